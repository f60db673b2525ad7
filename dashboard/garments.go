package dashboard

import (
	"context"

	"github.com/Mithun19978/AlpenLuce/api"
	"github.com/Mithun19978/AlpenLuce/catalog"
	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
	"github.com/Mithun19978/AlpenLuce/mutation"
)

// GarmentScreen is the admin catalogue screen: the full garment list with
// per-record toggles, edit form, and delete.
type GarmentScreen struct {
	garments *api.GarmentAdminAPI
	ctrl     *mutation.Controller[catalog.Garment]
}

// NewGarmentScreen builds the screen against the given client.
func NewGarmentScreen(client *api.Client) *GarmentScreen {
	return &GarmentScreen{
		garments: client.GarmentAdmin(),
		ctrl:     mutation.NewController[catalog.Garment](),
	}
}

// Load fetches the catalogue wholesale.
func (s *GarmentScreen) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.garments.List)
}

// Garments returns the current list state.
func (s *GarmentScreen) Garments() []catalog.Garment { return s.ctrl.Records() }

// Pending reports whether the garment's controls should be disabled.
func (s *GarmentScreen) Pending(id int64) bool { return s.ctrl.Pending(id) }

// Err returns the screen-level error banner, or nil.
func (s *GarmentScreen) Err() error { return s.ctrl.Err() }

// Close discards the screen; late mutation results are ignored.
func (s *GarmentScreen) Close() { s.ctrl.Close() }

// ToggleActive flips whether the garment is purchasable.
func (s *GarmentScreen) ToggleActive(ctx context.Context, id int64) error {
	g, ok := s.ctrl.Get(id)
	if !ok {
		return clienterrors.ErrRecordNotFound
	}
	next := !g.Active
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.garments.SetActive(ctx, id, next) },
		func(cur catalog.Garment) catalog.Garment {
			cur.Active = next
			return cur
		},
	)
}

// ToggleFeatured flips home page visibility. An inactive garment cannot be
// featured: the call is not attempted and no network traffic occurs. The
// server remains the final authority; this is the dashboard-side guard
// that keeps the control disabled.
func (s *GarmentScreen) ToggleFeatured(ctx context.Context, id int64) error {
	g, ok := s.ctrl.Get(id)
	if !ok {
		return clienterrors.ErrRecordNotFound
	}
	next := !g.Featured
	if next && !g.CanFeature() {
		return clienterrors.ErrInactiveGarment
	}
	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.garments.SetFeatured(ctx, id, next) },
		func(cur catalog.Garment) catalog.Garment {
			cur.Featured = next
			return cur
		},
	)
}

// Save submits the edit form. Updating merges the form into the existing
// record, keeping its toggles; creating reloads the list since the new
// record's identifier is otherwise unknown.
func (s *GarmentScreen) Save(ctx context.Context, id int64, form catalog.GarmentForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if id == 0 {
		return s.ctrl.Create(ctx,
			func(ctx context.Context) error { return s.garments.Create(ctx, form) },
			s.garments.List,
		)
	}

	return s.ctrl.Merge(ctx, id,
		func(ctx context.Context) error { return s.garments.Update(ctx, id, form) },
		func(cur catalog.Garment) catalog.Garment {
			cur.Name = form.Name
			cur.Description = form.Description
			cur.GarmentType = form.GarmentType
			cur.Category = form.Category
			cur.BasePrice = form.BasePrice
			cur.BaseColor = form.BaseColor
			cur.GSM = form.GSM
			cur.FabricDescription = form.FabricDescription
			return cur
		},
	)
}

// Delete removes a garment. The human-readable confirmation must have
// been acknowledged by the caller.
func (s *GarmentScreen) Delete(ctx context.Context, id int64, confirmed bool) error {
	return s.ctrl.Delete(ctx, id, confirmed,
		func(ctx context.Context) error { return s.garments.Delete(ctx, id) },
	)
}
