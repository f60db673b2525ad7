package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mithun19978/AlpenLuce/dashboard"
	"github.com/Mithun19978/AlpenLuce/users"
)

func TestUserScreen_ChangeRole(t *testing.T) {
	setup := func(t *testing.T) (*screenFixture, *dashboard.UserScreen) {
		f := setupScreenFixture(t, users.RoleAdmin)
		f.mux.HandleFunc("GET /user/getUserAll", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]users.User{
				{ID: 1, Username: "maria", Role: users.RoleUser},
				{ID: 2, Username: "jonas", Role: users.RoleUser},
			})
		})

		screen := dashboard.NewUserScreen(f.client)
		require.NoError(t, screen.Load(context.Background()))
		return f, screen
	}

	t.Run("accepted change updates a single account", func(t *testing.T) {
		f, screen := setup(t)
		f.mux.HandleFunc("PUT /admin/users/2/role", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Role users.Role `json:"role"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, users.RoleUser|users.RoleSupport, body.Role)
		})

		require.NoError(t, screen.ChangeRole(context.Background(), 2, users.RoleUser|users.RoleSupport))

		list := screen.Users()
		require.Equal(t, users.RoleUser, list[0].Role)
		require.Equal(t, users.RoleUser|users.RoleSupport, list[1].Role)
	})

	t.Run("rejected change leaves the prior role", func(t *testing.T) {
		f, screen := setup(t)
		f.mux.HandleFunc("PUT /admin/users/2/role", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		require.Error(t, screen.ChangeRole(context.Background(), 2, users.RoleAdmin))
		require.Equal(t, users.RoleUser, screen.Users()[1].Role)
		require.Error(t, screen.Err())
	})
}
