package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/Mithun19978/AlpenLuce/api"
	"github.com/Mithun19978/AlpenLuce/session"
	"github.com/Mithun19978/AlpenLuce/session/storefake"
	"github.com/Mithun19978/AlpenLuce/users"
)

// screenFixture wires a test server and an authenticated client for the
// dashboard screens.
type screenFixture struct {
	mux      *http.ServeMux
	server   *httptest.Server
	session  *session.Manager
	client   *api.Client
	requests atomic.Int64
}

func setupScreenFixture(t *testing.T, role users.Role) *screenFixture {
	t.Helper()

	f := &screenFixture{mux: http.NewServeMux()}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	var err error
	f.session, err = session.NewManager(storefake.NewFakeStore())
	require.NoError(t, err)
	require.NoError(t, f.session.Login(&oauth2.Token{
		AccessToken:  "access-token-1",
		RefreshToken: "refresh-token-1",
		TokenType:    "Bearer",
	}, session.Identity{Username: "maria", Role: role}))

	f.client, err = api.NewClient(f.server.URL, f.session)
	require.NoError(t, err)

	return f
}
