package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mithun19978/AlpenLuce/dashboard"
	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/tickets"
	"github.com/Mithun19978/AlpenLuce/users"
)

func ticketFixture(t *testing.T, role users.Role, seed ...tickets.SupportTicket) (*screenFixture, *dashboard.TicketScreen) {
	t.Helper()

	f := setupScreenFixture(t, role)
	f.mux.HandleFunc("GET /support/tickets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seed)
	})
	f.mux.HandleFunc("GET /user/tickets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seed)
	})

	screen := dashboard.NewTicketScreen(f.client)
	return f, screen
}

func TestTicketScreen_Create(t *testing.T) {
	t.Run("invalid form never reaches the network", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleUser)
		require.NoError(t, screen.LoadMine(context.Background()))
		before := f.requests.Load()

		err := screen.Create(context.Background(), tickets.CreateRequest{OrderID: 7})
		require.Error(t, err)
		require.Equal(t, before, f.requests.Load())
	})

	t.Run("created ticket is prepended", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleUser,
			tickets.SupportTicket{ID: 1, Description: "late delivery", Status: tickets.StatusOpen},
		)
		require.NoError(t, screen.LoadMine(context.Background()))

		f.mux.HandleFunc("POST /user/tickets", func(w http.ResponseWriter, r *http.Request) {
			var req tickets.CreateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(tickets.SupportTicket{
				ID:          2,
				OrderID:     req.OrderID,
				IssueType:   req.IssueType,
				Description: req.Description,
				Status:      tickets.StatusOpen,
			})
		})

		require.NoError(t, screen.Create(context.Background(), tickets.CreateRequest{
			OrderID:     7,
			IssueType:   "SIZING",
			Description: "hoodie runs small",
		}))

		list := screen.Tickets()
		require.Len(t, list, 2)
		require.Equal(t, int64(2), list[0].ID)
		require.Equal(t, int64(1), list[1].ID)
	})
}

func TestTicketScreen_Actions(t *testing.T) {
	seed := []tickets.SupportTicket{
		{ID: 1, Status: tickets.StatusOpen},
		{ID: 2, Status: tickets.StatusEscalated},
		{ID: 3, Status: tickets.StatusResolved},
	}

	t.Run("support sees resolve and escalate on open tickets", func(t *testing.T) {
		_, screen := ticketFixture(t, users.RoleUser|users.RoleSupport, seed...)
		require.NoError(t, screen.LoadAll(context.Background()))

		require.Equal(t, []tickets.Action{tickets.ActionResolve, tickets.ActionEscalate}, screen.Actions(1))
		require.Empty(t, screen.Actions(2))
		require.Empty(t, screen.Actions(3))
	})

	t.Run("admin sees decide on escalated tickets only", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleUser|users.RoleAdmin, seed...)
		f.mux.HandleFunc("GET /admin/tickets", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(seed)
		})
		require.NoError(t, screen.LoadEscalated(context.Background()))

		require.Empty(t, screen.Actions(1))
		require.Equal(t, []tickets.Action{tickets.ActionDecide}, screen.Actions(2))
		require.Empty(t, screen.Actions(3))
	})
}

func TestTicketScreen_Resolve(t *testing.T) {
	t.Run("support resolves an open ticket", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleSupport,
			tickets.SupportTicket{ID: 1, Status: tickets.StatusOpen},
		)
		require.NoError(t, screen.LoadAll(context.Background()))

		f.mux.HandleFunc("POST /support/tickets/1/resolve", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Resolution string `json:"resolution"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "refunded", body.Resolution)
		})

		require.NoError(t, screen.Resolve(context.Background(), 1, "refunded"))

		got := screen.Tickets()[0]
		require.Equal(t, tickets.StatusResolved, got.Status)
		require.Equal(t, "refunded", got.Resolution)
	})

	t.Run("non-support role is refused locally", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleUser,
			tickets.SupportTicket{ID: 1, Status: tickets.StatusOpen},
		)
		require.NoError(t, screen.LoadMine(context.Background()))
		before := f.requests.Load()

		err := screen.Resolve(context.Background(), 1, "refunded")
		require.ErrorIs(t, err, clienterrors.ErrUnsupported)
		require.Equal(t, before, f.requests.Load())
	})

	t.Run("terminal status admits no further actions", func(t *testing.T) {
		f, screen := ticketFixture(t, users.RoleSupport,
			tickets.SupportTicket{ID: 1, Status: tickets.StatusResolved},
		)
		require.NoError(t, screen.LoadAll(context.Background()))
		before := f.requests.Load()

		err := screen.Resolve(context.Background(), 1, "again")
		require.ErrorIs(t, err, clienterrors.ErrUnsupported)
		require.Equal(t, before, f.requests.Load())
	})
}

func TestTicketScreen_Escalate(t *testing.T) {
	f, screen := ticketFixture(t, users.RoleSupport,
		tickets.SupportTicket{ID: 1, Status: tickets.StatusOpen},
	)
	require.NoError(t, screen.LoadAll(context.Background()))

	f.mux.HandleFunc("POST /support/tickets/1/escalate", func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, screen.Escalate(context.Background(), 1))
	require.Equal(t, tickets.StatusEscalated, screen.Tickets()[0].Status)
}

func TestTicketScreen_Decide(t *testing.T) {
	setup := func(t *testing.T) (*screenFixture, *dashboard.TicketScreen) {
		f, screen := ticketFixture(t, users.RoleAdmin)
		f.mux.HandleFunc("GET /admin/tickets", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]tickets.SupportTicket{
				{ID: 2, Status: tickets.StatusEscalated},
			})
		})
		require.NoError(t, screen.LoadEscalated(context.Background()))
		return f, screen
	}

	t.Run("approval records the ruling", func(t *testing.T) {
		f, screen := setup(t)
		f.mux.HandleFunc("POST /admin/tickets/2/decide", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Decision   tickets.Decision `json:"decision"`
				Resolution string           `json:"resolution"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, tickets.DecisionApprove, body.Decision)
		})

		require.NoError(t, screen.Decide(context.Background(), 2, tickets.DecisionApprove, "store credit issued"))

		got := screen.Tickets()[0]
		require.Equal(t, tickets.StatusApproved, got.Status)
		require.Equal(t, "store credit issued", got.Resolution)
	})

	t.Run("rejection yields the rejected status", func(t *testing.T) {
		f, screen := setup(t)
		f.mux.HandleFunc("POST /admin/tickets/2/decide", func(w http.ResponseWriter, r *http.Request) {})

		require.NoError(t, screen.Decide(context.Background(), 2, tickets.DecisionReject, "outside return window"))
		require.Equal(t, tickets.StatusRejected, screen.Tickets()[0].Status)
	})
}
