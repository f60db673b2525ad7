package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/session"
)

const defaultTimeout = 15 * time.Second

// Client talks to the AlpenLuce REST API. Every request carries the
// current access credential as a bearer header; a 401 on an authenticated
// request triggers one transparent refresh cycle and a single replay.
// Concurrent requests hitting a 401 while a refresh is in flight join the
// same refresh rather than racing their own.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	session          *session.Manager
	refreshGroup     singleflight.Group
	onSessionExpired func()
	logger           zerolog.Logger
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithOnSessionExpired sets the hook invoked when a refresh cycle fails
// and the session is cleared. The UI uses this to route back to the login
// entry point.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// WithLogger overrides the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient initialises a Client with required dependencies.
func NewClient(baseURL string, sess *session.Manager, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[NewClient] baseURL is required")
	}
	if sess == nil {
		return nil, errors.New("[NewClient] session manager is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    sess,
		logger:     log.Logger,
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// Session exposes the session manager the client was built with.
func (c *Client) Session() *session.Manager { return c.session }

// Error is an API failure surfaced to callers. Message is short and
// human-readable; raw server error text is never carried through.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

func statusError(status int) *Error {
	msg := "request failed"
	switch {
	case status == http.StatusUnauthorized:
		msg = "not authorized"
	case status == http.StatusForbidden:
		msg = "access denied"
	case status == http.StatusNotFound:
		msg = "not found"
	case status >= http.StatusInternalServerError:
		msg = "server error"
	case status >= http.StatusBadRequest:
		msg = "invalid request"
	}
	return &Error{Status: status, Message: msg}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodPatch, path, query, nil, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do issues a single API call. The body is buffered up front so the one
// refresh-triggered replay reuses exactly the same payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
	}

	wasAuthed := c.session.Authenticated()
	resp, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && wasAuthed {
		resp.Body.Close()
		if err := c.refreshAccessCredential(ctx); err != nil {
			return err
		}
		c.logger.Debug().Str("method", method).Str("path", path).Msg("Replaying request with refreshed credential")
		resp, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return statusError(resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "[Client.do] decode response body")
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.send] build %s %s", method, path)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.session.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.send] %s %s", method, path)
	}
	return resp, nil
}

// refreshAccessCredential runs the transparent refresh protocol. All
// callers that hit a 401 while a refresh is in flight share the single
// refresh call; each then replays its own request once with the fresh
// credential. A failed refresh is fatal for the session: it is cleared
// and the expiry hook fires.
func (c *Client) refreshAccessCredential(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		rt := c.session.RefreshToken()
		if rt == "" {
			return nil, clienterrors.ErrNoRefreshCredential
		}

		c.logger.Debug().Msg("Refreshing access credential")
		access, err := c.callRefresh(ctx, rt)
		if err != nil {
			return nil, err
		}
		if err := c.session.SetAccessToken(access); err != nil {
			return nil, err
		}
		return access, nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("Credential refresh failed, clearing session")
		c.session.Clear()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return clienterrors.Wrapf(clienterrors.ErrSessionExpired, "refresh access credential")
	}
	return nil
}

// callRefresh posts the refresh endpoint directly, outside the bearer
// attachment and retry paths.
func (c *Client) callRefresh(ctx context.Context, refreshCredential string) (string, error) {
	payload, err := json.Marshal(refreshRequest{RefreshToken: refreshCredential})
	if err != nil {
		return "", errors.Wrap(err, "[Client.callRefresh] marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "[Client.callRefresh] build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "[Client.callRefresh] post refresh")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", clienterrors.ErrRefreshFailed
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "[Client.callRefresh] decode response")
	}
	if out.AccessToken == "" {
		return "", clienterrors.ErrRefreshFailed
	}
	return out.AccessToken, nil
}
