package tickets

import (
	"fmt"
	"strings"

	"github.com/Mithun19978/AlpenLuce/users"
)

// Status is the server-owned lifecycle state of a support ticket. The
// client never transitions a ticket itself; it renders whatever the server
// returns and offers only the actions legal from the current state.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusEscalated Status = "ESCALATED"
	StatusResolved  Status = "RESOLVED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusClosed    Status = "CLOSED"
)

// Terminal reports whether the status admits no further client actions.
func (s Status) Terminal() bool {
	switch s {
	case StatusResolved, StatusApproved, StatusRejected, StatusClosed:
		return true
	}
	return false
}

// Action is a ticket operation a dashboard may offer.
type Action string

const (
	ActionResolve  Action = "resolve"  // support: OPEN -> RESOLVED
	ActionEscalate Action = "escalate" // support: OPEN -> ESCALATED
	ActionDecide   Action = "decide"   // admin: ESCALATED -> APPROVED|REJECTED
)

// ActionsFor returns the actions a principal with the given role may be
// offered for a ticket in the given status.
func ActionsFor(status Status, role users.Role) []Action {
	var actions []Action
	switch status {
	case StatusOpen:
		if role.Has(users.RoleSupport) {
			actions = append(actions, ActionResolve, ActionEscalate)
		}
	case StatusEscalated:
		if role.Has(users.RoleAdmin) {
			actions = append(actions, ActionDecide)
		}
	}
	return actions
}

// Decision is an admin ruling on an escalated ticket.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// SupportTicket is a ticket as rendered in the user, support and admin
// dashboards.
type SupportTicket struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	OrderID     int64  `json:"orderId"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Resolution  string `json:"resolution,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// RecordID implements the mutation record contract.
func (t SupportTicket) RecordID() int64 { return t.ID }

// CreateRequest is the payload for filing a new ticket.
type CreateRequest struct {
	OrderID     int64  `json:"orderId"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
}

// Validate checks the ticket form before any network call is made.
func (r CreateRequest) Validate() error {
	if r.OrderID <= 0 {
		return fmt.Errorf("a valid order id is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}
