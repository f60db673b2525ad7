package api

import "context"

// ActivityLog is an audit entry shown in the admin activity dashboard.
type ActivityLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ActivityAPI covers the read-only admin audit trail.
type ActivityAPI struct {
	c *Client
}

// Activity returns the activity log client.
func (c *Client) Activity() *ActivityAPI { return &ActivityAPI{c: c} }

// List fetches the audit trail, newest first.
func (a *ActivityAPI) List(ctx context.Context) ([]ActivityLog, error) {
	var out []ActivityLog
	if err := a.c.get(ctx, "/admin/activity-logs", &out); err != nil {
		return nil, err
	}
	return out, nil
}
