package dashboard

import (
	"context"
	"slices"

	"github.com/Mithun19978/AlpenLuce/api"
	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/mutation"
	"github.com/Mithun19978/AlpenLuce/session"
	"github.com/Mithun19978/AlpenLuce/tickets"
)

// TicketScreen serves the user, support and admin ticket dashboards.
// Status transitions are server-owned; the screen only offers the actions
// legal for the current status and the caller's role.
type TicketScreen struct {
	tickets *api.TicketsAPI
	session *session.Manager
	ctrl    *mutation.Controller[tickets.SupportTicket]
}

// NewTicketScreen builds the screen against the given client.
func NewTicketScreen(client *api.Client) *TicketScreen {
	return &TicketScreen{
		tickets: client.Tickets(),
		session: client.Session(),
		ctrl:    mutation.NewController[tickets.SupportTicket](),
	}
}

// LoadMine fetches the caller's own tickets.
func (s *TicketScreen) LoadMine(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.tickets.Mine)
}

// LoadAll fetches every ticket for the support queue.
func (s *TicketScreen) LoadAll(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.tickets.All)
}

// LoadEscalated fetches tickets awaiting an admin decision.
func (s *TicketScreen) LoadEscalated(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.tickets.Escalated)
}

// Tickets returns the current list state.
func (s *TicketScreen) Tickets() []tickets.SupportTicket { return s.ctrl.Records() }

// Pending reports whether the ticket's controls should be disabled.
func (s *TicketScreen) Pending(id int64) bool { return s.ctrl.Pending(id) }

// Err returns the screen-level error banner, or nil.
func (s *TicketScreen) Err() error { return s.ctrl.Err() }

// Close discards the screen; late mutation results are ignored.
func (s *TicketScreen) Close() { s.ctrl.Close() }

// Actions returns the buttons to offer for a ticket, given its status and
// the caller's role.
func (s *TicketScreen) Actions(id int64) []tickets.Action {
	t, ok := s.ctrl.Get(id)
	if !ok {
		return nil
	}
	return tickets.ActionsFor(t.Status, s.session.CurrentRole())
}

// Create files a new ticket. Validation happens before any network call;
// the returned record is prepended to the list.
func (s *TicketScreen) Create(ctx context.Context, req tickets.CreateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.ctrl.Prepend(ctx, func(ctx context.Context) (*tickets.SupportTicket, error) {
		return s.tickets.Create(ctx, req)
	})
}

// Resolve closes an open ticket with a resolution note.
func (s *TicketScreen) Resolve(ctx context.Context, id int64, resolution string) error {
	if err := s.allowed(id, tickets.ActionResolve); err != nil {
		return err
	}
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.tickets.Resolve(ctx, id, resolution) },
		func(cur tickets.SupportTicket) tickets.SupportTicket {
			cur.Status = tickets.StatusResolved
			cur.Resolution = resolution
			return cur
		},
	)
}

// Escalate hands an open ticket to the admin queue.
func (s *TicketScreen) Escalate(ctx context.Context, id int64) error {
	if err := s.allowed(id, tickets.ActionEscalate); err != nil {
		return err
	}
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.tickets.Escalate(ctx, id) },
		func(cur tickets.SupportTicket) tickets.SupportTicket {
			cur.Status = tickets.StatusEscalated
			return cur
		},
	)
}

// Decide records the admin ruling on an escalated ticket as a resolution
// note plus terminal status.
func (s *TicketScreen) Decide(ctx context.Context, id int64, decision tickets.Decision, resolution string) error {
	if err := s.allowed(id, tickets.ActionDecide); err != nil {
		return err
	}
	terminal := tickets.StatusApproved
	if decision == tickets.DecisionReject {
		terminal = tickets.StatusRejected
	}
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.tickets.Decide(ctx, id, decision, resolution) },
		func(cur tickets.SupportTicket) tickets.SupportTicket {
			cur.Status = terminal
			cur.Resolution = resolution
			return cur
		},
	)
}

func (s *TicketScreen) allowed(id int64, action tickets.Action) error {
	t, ok := s.ctrl.Get(id)
	if !ok {
		return clienterrors.ErrRecordNotFound
	}
	if !slices.Contains(tickets.ActionsFor(t.Status, s.session.CurrentRole()), action) {
		return clienterrors.ErrUnsupported
	}
	return nil
}
