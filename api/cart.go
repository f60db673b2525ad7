package api

import (
	"context"
	"fmt"

	"github.com/Mithun19978/AlpenLuce/cart"
)

// CartAPI covers the caller's cart.
type CartAPI struct {
	c *Client
}

// Cart returns the cart resource client.
func (c *Client) Cart() *CartAPI { return &CartAPI{c: c} }

// Items fetches the cart contents.
func (ca *CartAPI) Items(ctx context.Context) ([]cart.Item, error) {
	var out []cart.Item
	if err := ca.c.get(ctx, "/user/cart", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type addCartRequest struct {
	CustomizationID int64 `json:"customizationId"`
}

// Add puts an approved customization in the cart. The endpoint does not
// return the created item, so callers reload the cart to learn its id.
func (ca *CartAPI) Add(ctx context.Context, customizationID int64) error {
	return ca.c.post(ctx, "/user/cart", addCartRequest{CustomizationID: customizationID}, nil)
}

// Remove takes an item out of the cart.
func (ca *CartAPI) Remove(ctx context.Context, cartItemID int64) error {
	return ca.c.delete(ctx, fmt.Sprintf("/user/cart/%d", cartItemID))
}
