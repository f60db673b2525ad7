package dashboard

import (
	"context"

	"github.com/Mithun19978/AlpenLuce/api"
	"github.com/Mithun19978/AlpenLuce/cart"
	"github.com/Mithun19978/AlpenLuce/mutation"
)

// CartScreen is the user's cart: approved customizations queued for
// checkout.
type CartScreen struct {
	cart *api.CartAPI
	ctrl *mutation.Controller[cart.Item]
}

// NewCartScreen builds the screen against the given client.
func NewCartScreen(client *api.Client) *CartScreen {
	return &CartScreen{
		cart: client.Cart(),
		ctrl: mutation.NewController[cart.Item](),
	}
}

// Load fetches the cart contents.
func (s *CartScreen) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.cart.Items)
}

// Items returns the current cart state.
func (s *CartScreen) Items() []cart.Item { return s.ctrl.Records() }

// Pending reports whether the item's controls should be disabled.
func (s *CartScreen) Pending(id int64) bool { return s.ctrl.Pending(id) }

// Err returns the screen-level error banner, or nil.
func (s *CartScreen) Err() error { return s.ctrl.Err() }

// Close discards the screen; late mutation results are ignored.
func (s *CartScreen) Close() { s.ctrl.Close() }

// Add puts an approved customization in the cart. The endpoint does not
// return the created item, so the cart is reloaded to learn its id.
func (s *CartScreen) Add(ctx context.Context, customizationID int64) error {
	return s.ctrl.Create(ctx,
		func(ctx context.Context) error { return s.cart.Add(ctx, customizationID) },
		s.cart.Items,
	)
}

// Remove takes an item out of the cart. Removal is a single click in the
// UI, so it counts as its own acknowledgement.
func (s *CartScreen) Remove(ctx context.Context, itemID int64) error {
	return s.ctrl.Delete(ctx, itemID, true,
		func(ctx context.Context) error { return s.cart.Remove(ctx, itemID) },
	)
}
