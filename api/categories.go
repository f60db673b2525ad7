package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Mithun19978/AlpenLuce/catalog"
)

// CategoriesAPI covers the admin category-management surface.
type CategoriesAPI struct {
	c *Client
}

// Categories returns the category resource client.
func (c *Client) Categories() *CategoriesAPI { return &CategoriesAPI{c: c} }

// List fetches all categories.
func (ca *CategoriesAPI) List(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := ca.c.get(ctx, "/admin/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetActive toggles a category's visibility in the shop.
func (ca *CategoriesAPI) SetActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"active": []string{strconv.FormatBool(active)}}
	return ca.c.patch(ctx, fmt.Sprintf("/admin/categories/%d/active", id), q)
}
