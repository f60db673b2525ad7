package dashboard

import (
	"context"

	"github.com/Mithun19978/AlpenLuce/api"
	"github.com/Mithun19978/AlpenLuce/catalog"
	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/mutation"
)

// CategoryScreen is the admin category screen: a list of categories with a
// visibility toggle per record.
type CategoryScreen struct {
	categories *api.CategoriesAPI
	ctrl       *mutation.Controller[catalog.Category]
}

// NewCategoryScreen builds the screen against the given client.
func NewCategoryScreen(client *api.Client) *CategoryScreen {
	return &CategoryScreen{
		categories: client.Categories(),
		ctrl:       mutation.NewController[catalog.Category](),
	}
}

// Load fetches all categories.
func (s *CategoryScreen) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.categories.List)
}

// Categories returns the current list state.
func (s *CategoryScreen) Categories() []catalog.Category { return s.ctrl.Records() }

// Pending reports whether the category's toggle should be disabled.
func (s *CategoryScreen) Pending(id int64) bool { return s.ctrl.Pending(id) }

// Err returns the screen-level error banner, or nil.
func (s *CategoryScreen) Err() error { return s.ctrl.Err() }

// Close discards the screen; late mutation results are ignored.
func (s *CategoryScreen) Close() { s.ctrl.Close() }

// ToggleActive flips a category's shop visibility.
func (s *CategoryScreen) ToggleActive(ctx context.Context, id int64) error {
	c, ok := s.ctrl.Get(id)
	if !ok {
		return clienterrors.ErrRecordNotFound
	}
	next := !c.Active
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.categories.SetActive(ctx, id, next) },
		func(cur catalog.Category) catalog.Category {
			cur.Active = next
			return cur
		},
	)
}
