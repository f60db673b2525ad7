package catalog

import (
	"fmt"
	"strings"
)

// Garment is a catalogue item as managed from the admin dashboard. Prices
// are in cents.
type Garment struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	GarmentType       string `json:"garmentType"`
	Category          string `json:"category,omitempty"`
	BasePrice         int64  `json:"basePrice"`
	BaseColor         string `json:"baseColor,omitempty"`
	GSM               *int   `json:"gsm,omitempty"`
	FabricDescription string `json:"fabricDescription,omitempty"`
	Active            bool   `json:"active"`
	Featured          bool   `json:"featured"`
}

// RecordID implements the mutation record contract.
func (g Garment) RecordID() int64 { return g.ID }

// CanFeature reports whether the garment may be shown on the home page.
// Only active garments are featurable; the server is the final authority,
// this is the dashboard-side guard.
func (g Garment) CanFeature() bool { return g.Active }

// GarmentForm is the create/update payload built from the admin form.
type GarmentForm struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	GarmentType       string `json:"garmentType"`
	Category          string `json:"category"`
	BasePrice         int64  `json:"basePrice"`
	BaseColor         string `json:"baseColor,omitempty"`
	GSM               *int   `json:"gsm,omitempty"`
	FabricDescription string `json:"fabricDescription,omitempty"`
}

// Validate checks the form before submission.
func (f GarmentForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if f.GarmentType == "" {
		return fmt.Errorf("garment type is required")
	}
	if f.Category == "" {
		return fmt.Errorf("category is required")
	}
	if f.BasePrice <= 0 {
		return fmt.Errorf("base price is required")
	}
	return nil
}

// Category is a catalogue grouping toggled from the admin dashboard.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Depth    int    `json:"depth"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// RecordID implements the mutation record contract.
func (c Category) RecordID() int64 { return c.ID }
