package api

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Mithun19978/AlpenLuce/users"
)

// UsersAPI covers registration and the admin user-management surface.
type UsersAPI struct {
	c *Client
}

// Users returns the user resource client.
func (c *Client) Users() *UsersAPI { return &UsersAPI{c: c} }

// Register creates a new account. The form is validated before any
// network call is made.
func (u *UsersAPI) Register(ctx context.Context, reg users.Registration) error {
	if err := reg.Validate(); err != nil {
		return errors.Wrap(err, "[UsersAPI.Register] validation")
	}
	return u.c.post(ctx, "/user/register", reg, nil)
}

// List fetches all accounts for the admin dashboard.
func (u *UsersAPI) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := u.c.get(ctx, "/user/getUserAll", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type changeRoleRequest struct {
	Role users.Role `json:"role"`
}

// ChangeRole replaces a user's role bitmask.
func (u *UsersAPI) ChangeRole(ctx context.Context, userID int64, role users.Role) error {
	return u.c.put(ctx, fmt.Sprintf("/admin/users/%d/role", userID), changeRoleRequest{Role: role}, nil)
}
