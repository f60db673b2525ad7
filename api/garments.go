package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Mithun19978/AlpenLuce/catalog"
)

// GarmentsAPI covers the public shop catalogue.
type GarmentsAPI struct {
	c *Client
}

// Garments returns the shop catalogue client.
func (c *Client) Garments() *GarmentsAPI { return &GarmentsAPI{c: c} }

// List fetches the shoppable catalogue.
func (g *GarmentsAPI) List(ctx context.Context) ([]catalog.Garment, error) {
	var out []catalog.Garment
	if err := g.c.get(ctx, "/garments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single catalogue item.
func (g *GarmentsAPI) Get(ctx context.Context, id int64) (*catalog.Garment, error) {
	var out catalog.Garment
	if err := g.c.get(ctx, fmt.Sprintf("/garments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GarmentAdminAPI covers the admin catalogue-management surface.
type GarmentAdminAPI struct {
	c *Client
}

// GarmentAdmin returns the admin catalogue client.
func (c *Client) GarmentAdmin() *GarmentAdminAPI { return &GarmentAdminAPI{c: c} }

// List fetches the full catalogue, active or not.
func (g *GarmentAdminAPI) List(ctx context.Context) ([]catalog.Garment, error) {
	var out []catalog.Garment
	if err := g.c.get(ctx, "/admin/garments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a catalogue item. The form is validated before any network
// call is made.
func (g *GarmentAdminAPI) Create(ctx context.Context, form catalog.GarmentForm) error {
	if err := form.Validate(); err != nil {
		return errors.Wrap(err, "[GarmentAdminAPI.Create] validation")
	}
	return g.c.post(ctx, "/admin/garments", form, nil)
}

// Update replaces a catalogue item's editable fields.
func (g *GarmentAdminAPI) Update(ctx context.Context, id int64, form catalog.GarmentForm) error {
	if err := form.Validate(); err != nil {
		return errors.Wrap(err, "[GarmentAdminAPI.Update] validation")
	}
	return g.c.put(ctx, fmt.Sprintf("/admin/garments/%d", id), form, nil)
}

// SetActive toggles whether the garment is purchasable.
func (g *GarmentAdminAPI) SetActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"active": []string{strconv.FormatBool(active)}}
	return g.c.patch(ctx, fmt.Sprintf("/admin/garments/%d/active", id), q)
}

// SetFeatured toggles home page visibility.
func (g *GarmentAdminAPI) SetFeatured(ctx context.Context, id int64, featured bool) error {
	q := url.Values{"featured": []string{strconv.FormatBool(featured)}}
	return g.c.patch(ctx, fmt.Sprintf("/admin/garments/%d/featured", id), q)
}

// Delete removes a catalogue item permanently.
func (g *GarmentAdminAPI) Delete(ctx context.Context, id int64) error {
	return g.c.delete(ctx, fmt.Sprintf("/admin/garments/%d", id))
}
