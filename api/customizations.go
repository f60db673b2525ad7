package api

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Mithun19978/AlpenLuce/designs"
)

// CustomizationsAPI covers design submission and the technical review
// surface.
type CustomizationsAPI struct {
	c *Client
}

// Customizations returns the customization resource client.
func (c *Client) Customizations() *CustomizationsAPI { return &CustomizationsAPI{c: c} }

type createCustomizationRequest struct {
	GarmentID int64           `json:"garmentId"`
	Notes     string          `json:"notes,omitempty"`
	Layers    []designs.Layer `json:"layers"`
}

// Submit sends a design built in the given store for technical review.
// The store must have a garment selected; the four layers are serialised
// as held.
func (ca *CustomizationsAPI) Submit(ctx context.Context, store *designs.Store, notes string) error {
	garmentID, ok := store.GarmentID()
	if !ok {
		return errors.New("[CustomizationsAPI.Submit] no garment selected")
	}
	req := createCustomizationRequest{
		GarmentID: garmentID,
		Notes:     notes,
		Layers:    store.Layers(),
	}
	return ca.c.post(ctx, "/user/customizations", req, nil)
}

// Mine fetches the caller's submitted designs with their review state.
func (ca *CustomizationsAPI) Mine(ctx context.Context) ([]designs.Customization, error) {
	var out []designs.Customization
	if err := ca.c.get(ctx, "/user/customizations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pending fetches designs awaiting technical review.
func (ca *CustomizationsAPI) Pending(ctx context.Context) ([]designs.Customization, error) {
	var out []designs.Customization
	if err := ca.c.get(ctx, "/technical/customizations/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type approveRequest struct {
	ApprovedPrice int64  `json:"approvedPrice"`
	Notes         string `json:"notes,omitempty"`
}

// Approve marks a pending design approved with a price in cents.
func (ca *CustomizationsAPI) Approve(ctx context.Context, id, priceInCents int64, notes string) error {
	return ca.c.post(ctx, fmt.Sprintf("/technical/customizations/%d/approve", id), approveRequest{
		ApprovedPrice: priceInCents,
		Notes:         notes,
	}, nil)
}

type rejectRequest struct {
	Notes string `json:"notes,omitempty"`
}

// Reject marks a pending design rejected.
func (ca *CustomizationsAPI) Reject(ctx context.Context, id int64, notes string) error {
	return ca.c.post(ctx, fmt.Sprintf("/technical/customizations/%d/reject", id), rejectRequest{Notes: notes}, nil)
}
