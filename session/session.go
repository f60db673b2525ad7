package session

import (
	"golang.org/x/oauth2"

	"github.com/Mithun19978/AlpenLuce/users"
)

// DefaultStorageKey is the namespaced key the session is persisted under.
const DefaultStorageKey = "alpenluce-auth"

// Identity is the authenticated principal as reported by the login or
// federated callback response.
type Identity struct {
	Username string     `json:"username"`
	Role     users.Role `json:"role"`
}

// Session is the current authenticated identity: the credential pair plus
// the identity it belongs to. Token non-nil iff Identity non-nil; the two
// are only ever written together.
type Session struct {
	Token    *oauth2.Token `json:"tokens,omitempty"`
	Identity *Identity     `json:"user,omitempty"`
}

// Authenticated reports whether the session holds a usable access
// credential and identity.
func (s Session) Authenticated() bool {
	return s.Token != nil && s.Token.AccessToken != "" && s.Identity != nil
}
