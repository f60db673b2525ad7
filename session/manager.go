package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/users"
)

// RevokeFunc revokes a refresh credential server-side. Used by Logout;
// failures are logged and swallowed so logout always succeeds locally.
type RevokeFunc func(ctx context.Context, refreshCredential string) error

// Manager owns the credential pair and identity for the process. It is the
// only component that mutates the session; every outbound request reads it
// through AccessToken. Safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	session Session
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager initialises a Manager backed by the given store. Any session
// persisted by a previous run is restored; malformed persisted state is
// treated as unauthenticated.
func NewManager(store Store, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] store is required")
	}

	m := &Manager{
		store:   store,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(m)
	}

	restored, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[NewManager] store.Load")
	}
	m.session = restored

	return m, nil
}

// Login stores the credential pair and identity atomically. Token shape is
// not validated; the caller is trusted to pass what the server issued.
func (m *Manager) Login(tok *oauth2.Token, identity Identity) error {
	if tok == nil || tok.AccessToken == "" {
		return errors.New("[Manager.Login] access credential is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{Token: tok, Identity: &identity}
	if err := m.store.Save(m.session); err != nil {
		return errors.Wrap(err, "[Manager.Login] persist session")
	}
	return nil
}

// Logout revokes the refresh credential server-side on a best-effort basis
// and clears the session. The local clear always happens, whatever the
// revoke call returns.
func (m *Manager) Logout(ctx context.Context, revoke RevokeFunc) {
	rt := m.RefreshToken()
	if revoke != nil && rt != "" {
		if err := revoke(ctx, rt); err != nil {
			log.Warn().Err(err).Msg("Logout: failed to revoke refresh credential")
		}
	}
	m.Clear()
}

// Clear drops the session to the unauthenticated state, both in memory and
// in the persistent store.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{}
	if err := m.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("Failed to clear persisted session")
	}
}

// Authenticated reports whether a usable session is held.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Authenticated()
}

// Identity returns the stored identity, or false when unauthenticated.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.session.Authenticated() {
		return Identity{}, false
	}
	return *m.session.Identity, true
}

// CurrentRole returns the role bitmask of the stored identity, or the
// RoleNone sentinel when unauthenticated.
func (m *Manager) CurrentRole() users.Role {
	id, ok := m.Identity()
	if !ok {
		return users.RoleNone
	}
	return id.Role
}

// HasCapability reports whether the current role holds the given bit.
func (m *Manager) HasCapability(bit users.Role) bool {
	return m.CurrentRole().Has(bit)
}

// AccessToken returns the current access credential, or empty when
// unauthenticated.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.Token == nil {
		return ""
	}
	return m.session.Token.AccessToken
}

// RefreshToken returns the current refresh credential, or empty when
// unauthenticated.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.Token == nil {
		return ""
	}
	return m.session.Token.RefreshToken
}

// SetAccessToken replaces the access credential in place after a refresh
// cycle. Identity and refresh credential are untouched. Fails when no
// session is held, since a credential without an identity would break the
// session invariant.
func (m *Manager) SetAccessToken(accessCredential string) error {
	if accessCredential == "" {
		return errors.New("[Manager.SetAccessToken] access credential is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Authenticated() {
		return clienterrors.ErrUnauthenticated
	}

	tok := *m.session.Token
	tok.AccessToken = accessCredential
	tok.Expiry = time.Time{} // expiry rides inside the JWT
	m.session.Token = &tok
	if err := m.store.Save(m.session); err != nil {
		return errors.Wrap(err, "[Manager.SetAccessToken] persist session")
	}
	return nil
}

// AccessExpired reports whether the held access credential is already past
// its expiry. The token is parsed without signature verification; the
// client only needs the exp claim, validity is the server's call. Tokens
// without a readable expiry are assumed live and left to the server to
// reject.
func (m *Manager) AccessExpired() bool {
	m.mu.RLock()
	tok := m.session.Token
	m.mu.RUnlock()

	if tok == nil || tok.AccessToken == "" {
		return false
	}
	if !tok.Expiry.IsZero() {
		return m.nowTime().After(tok.Expiry)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return m.nowTime().After(exp.Time)
}
