package cart

// Item is an approved customization placed in the user's cart. Price is in
// cents and set server-side from the approved design.
type Item struct {
	ID              int64  `json:"id"`
	CustomizationID int64  `json:"customizationId"`
	Price           int64  `json:"price,omitempty"`
	AddedAt         string `json:"addedAt"`
}

// RecordID implements the mutation record contract.
func (i Item) RecordID() int64 { return i.ID }
