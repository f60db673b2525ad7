package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/session"
	"github.com/Mithun19978/AlpenLuce/users"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	Role         users.Role `json:"role"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Login authenticates with username and password and stores the resulting
// session. Bad credentials surface as ErrInvalidCredentials with no retry.
func (c *Client) Login(ctx context.Context, username, password string) (session.Identity, error) {
	var out loginResponse
	err := c.post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return session.Identity{}, clienterrors.ErrInvalidCredentials
		}
		return session.Identity{}, errors.Wrap(err, "[Client.Login]")
	}

	identity := session.Identity{Username: username, Role: out.Role}
	tok := &oauth2.Token{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
	}
	if err := c.session.Login(tok, identity); err != nil {
		return session.Identity{}, errors.Wrap(err, "[Client.Login] store session")
	}

	c.logger.Info().Str("username", username).Str("roles", identity.Role.String()).Msg("Logged in")
	return identity, nil
}

// Logout revokes the refresh credential server-side on a best-effort basis
// and clears the local session. It never fails: a dead network must not
// keep a user logged in.
func (c *Client) Logout(ctx context.Context) {
	c.session.Logout(ctx, func(ctx context.Context, refreshCredential string) error {
		return c.post(ctx, "/auth/logout", logoutRequest{RefreshToken: refreshCredential}, nil)
	})
	c.logger.Info().Msg("Logged out")
}

// Callback is the parsed federated-login redirect.
type Callback struct {
	Token    *oauth2.Token
	Identity session.Identity
}

// DestinationPath returns the dashboard route for the identity's role,
// highest capability first.
func (cb Callback) DestinationPath() string {
	switch {
	case cb.Identity.Role.Has(users.RoleAdmin):
		return "/admin"
	case cb.Identity.Role.Has(users.RoleTechnical):
		return "/technical"
	case cb.Identity.Role.Has(users.RoleSupport):
		return "/support"
	default:
		return "/dashboard"
	}
}

// ParseCallback reads the federated-login callback query parameters. An
// error parameter or a missing credential means the federated flow failed
// and the caller should return to the login entry point.
func ParseCallback(query url.Values) (Callback, error) {
	if e := query.Get("error"); e != "" {
		return Callback{}, errors.Errorf("[ParseCallback] federated login failed: %s", e)
	}

	access := query.Get("accessToken")
	refresh := query.Get("refreshToken")
	username := query.Get("username")
	if access == "" || refresh == "" || username == "" {
		return Callback{}, errors.New("[ParseCallback] incomplete callback parameters")
	}

	role, err := strconv.Atoi(query.Get("role"))
	if err != nil {
		return Callback{}, errors.Wrap(err, "[ParseCallback] parse role mask")
	}

	return Callback{
		Token: &oauth2.Token{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
		},
		Identity: session.Identity{Username: username, Role: users.Role(role)},
	}, nil
}

// CompleteCallback parses the federated-login redirect, stores the session
// and returns the role-appropriate destination path.
func (c *Client) CompleteCallback(query url.Values) (string, error) {
	cb, err := ParseCallback(query)
	if err != nil {
		return "", err
	}
	if err := c.session.Login(cb.Token, cb.Identity); err != nil {
		return "", errors.Wrap(err, "[Client.CompleteCallback] store session")
	}
	c.logger.Info().Str("username", cb.Identity.Username).Str("roles", cb.Identity.Role.String()).Msg("Federated login complete")
	return cb.DestinationPath(), nil
}
