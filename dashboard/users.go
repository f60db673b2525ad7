package dashboard

import (
	"context"

	"github.com/Mithun19978/AlpenLuce/api"
	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/mutation"
	"github.com/Mithun19978/AlpenLuce/users"
)

// UserScreen is the admin user-management screen.
type UserScreen struct {
	users *api.UsersAPI
	ctrl  *mutation.Controller[users.User]
}

// NewUserScreen builds the screen against the given client.
func NewUserScreen(client *api.Client) *UserScreen {
	return &UserScreen{
		users: client.Users(),
		ctrl:  mutation.NewController[users.User](),
	}
}

// Load fetches all accounts.
func (s *UserScreen) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.users.List)
}

// Users returns the current list state.
func (s *UserScreen) Users() []users.User { return s.ctrl.Records() }

// Pending reports whether the account's controls should be disabled.
func (s *UserScreen) Pending(id int64) bool { return s.ctrl.Pending(id) }

// Err returns the screen-level error banner, or nil.
func (s *UserScreen) Err() error { return s.ctrl.Err() }

// Close discards the screen; late mutation results are ignored.
func (s *UserScreen) Close() { s.ctrl.Close() }

// ChangeRole replaces an account's role bitmask.
func (s *UserScreen) ChangeRole(ctx context.Context, id int64, role users.Role) error {
	if _, ok := s.ctrl.Get(id); !ok {
		return clienterrors.ErrRecordNotFound
	}
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.users.ChangeRole(ctx, id, role) },
		func(cur users.User) users.User {
			cur.Role = role
			return cur
		},
	)
}
