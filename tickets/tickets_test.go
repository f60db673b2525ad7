package tickets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mithun19978/AlpenLuce/tickets"
	"github.com/Mithun19978/AlpenLuce/users"
)

func TestActionsFor(t *testing.T) {
	t.Run("support sees resolve and escalate on open tickets", func(t *testing.T) {
		actions := tickets.ActionsFor(tickets.StatusOpen, users.RoleSupport)
		require.ElementsMatch(t, []tickets.Action{tickets.ActionResolve, tickets.ActionEscalate}, actions)
	})

	t.Run("admin decides escalated tickets", func(t *testing.T) {
		actions := tickets.ActionsFor(tickets.StatusEscalated, users.RoleAdmin)
		require.Equal(t, []tickets.Action{tickets.ActionDecide}, actions)
	})

	t.Run("support cannot decide escalations", func(t *testing.T) {
		require.Empty(t, tickets.ActionsFor(tickets.StatusEscalated, users.RoleSupport))
	})

	t.Run("plain users get no actions", func(t *testing.T) {
		require.Empty(t, tickets.ActionsFor(tickets.StatusOpen, users.RoleUser))
	})

	t.Run("terminal statuses offer nothing to anyone", func(t *testing.T) {
		everyone := users.RoleUser | users.RoleAdmin | users.RoleTechnical | users.RoleSupport
		for _, status := range []tickets.Status{
			tickets.StatusResolved, tickets.StatusApproved, tickets.StatusRejected, tickets.StatusClosed,
		} {
			require.Empty(t, tickets.ActionsFor(status, everyone), "status %s", status)
		}
	})

	t.Run("combined role sees the union", func(t *testing.T) {
		role := users.RoleAdmin | users.RoleSupport
		require.NotEmpty(t, tickets.ActionsFor(tickets.StatusOpen, role))
		require.NotEmpty(t, tickets.ActionsFor(tickets.StatusEscalated, role))
	})
}

func TestStatus_Terminal(t *testing.T) {
	require.False(t, tickets.StatusOpen.Terminal())
	require.False(t, tickets.StatusEscalated.Terminal())
	require.True(t, tickets.StatusResolved.Terminal())
	require.True(t, tickets.StatusApproved.Terminal())
	require.True(t, tickets.StatusRejected.Terminal())
	require.True(t, tickets.StatusClosed.Terminal())
}

func TestCreateRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := tickets.CreateRequest{OrderID: 12, IssueType: "sizing", Description: "Sleeves too short"}
		require.NoError(t, req.Validate())
	})

	t.Run("empty description", func(t *testing.T) {
		req := tickets.CreateRequest{OrderID: 12, IssueType: "sizing", Description: "   "}
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "description is required")
	})

	t.Run("missing order id", func(t *testing.T) {
		req := tickets.CreateRequest{Description: "Sleeves too short"}
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "order id")
	})
}
