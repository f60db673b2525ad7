package api

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Mithun19978/AlpenLuce/tickets"
)

// TicketsAPI covers the user, support and admin ticket surfaces.
type TicketsAPI struct {
	c *Client
}

// Tickets returns the ticket resource client.
func (c *Client) Tickets() *TicketsAPI { return &TicketsAPI{c: c} }

// Mine fetches the caller's tickets.
func (t *TicketsAPI) Mine(ctx context.Context) ([]tickets.SupportTicket, error) {
	var out []tickets.SupportTicket
	if err := t.c.get(ctx, "/user/tickets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All fetches every ticket for the support dashboard.
func (t *TicketsAPI) All(ctx context.Context) ([]tickets.SupportTicket, error) {
	var out []tickets.SupportTicket
	if err := t.c.get(ctx, "/support/tickets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Escalated fetches tickets awaiting an admin decision.
func (t *TicketsAPI) Escalated(ctx context.Context) ([]tickets.SupportTicket, error) {
	var out []tickets.SupportTicket
	if err := t.c.get(ctx, "/admin/tickets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create files a new ticket and returns the created record. The form is
// validated before any network call is made.
func (t *TicketsAPI) Create(ctx context.Context, req tickets.CreateRequest) (*tickets.SupportTicket, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "[TicketsAPI.Create] validation")
	}
	var out tickets.SupportTicket
	if err := t.c.post(ctx, "/user/tickets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type resolveRequest struct {
	Resolution string `json:"resolution"`
}

// Resolve closes an open ticket with a resolution note.
func (t *TicketsAPI) Resolve(ctx context.Context, id int64, resolution string) error {
	return t.c.post(ctx, fmt.Sprintf("/support/tickets/%d/resolve", id), resolveRequest{Resolution: resolution}, nil)
}

// Escalate hands an open ticket to the admin queue.
func (t *TicketsAPI) Escalate(ctx context.Context, id int64) error {
	return t.c.post(ctx, fmt.Sprintf("/support/tickets/%d/escalate", id), nil, nil)
}

type decideRequest struct {
	Decision   tickets.Decision `json:"decision"`
	Resolution string           `json:"resolution"`
}

// Decide records the admin ruling on an escalated ticket.
func (t *TicketsAPI) Decide(ctx context.Context, id int64, decision tickets.Decision, resolution string) error {
	return t.c.post(ctx, fmt.Sprintf("/admin/tickets/%d/decide", id), decideRequest{
		Decision:   decision,
		Resolution: resolution,
	}, nil)
}
