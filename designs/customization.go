package designs

// ReviewStatus is the server-owned technical review state of a submitted
// design. PENDING moves to APPROVED (with a server-set price) or REJECTED;
// both are terminal from the client's perspective.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Terminal reports whether the review status can no longer change.
func (s ReviewStatus) Terminal() bool {
	return s == ReviewApproved || s == ReviewRejected
}

// Customization is a submitted garment design with its review state.
// ApprovedPrice is in cents and only set once the review lands on
// APPROVED.
type Customization struct {
	ID             int64        `json:"id"`
	GarmentID      int64        `json:"garmentId"`
	UserID         int64        `json:"userId"`
	Status         ReviewStatus `json:"status"`
	Notes          string       `json:"notes,omitempty"`
	ApprovedPrice  int64        `json:"approvedPrice,omitempty"`
	TechnicalNotes string       `json:"technicalNotes,omitempty"`
	Layers         []Layer      `json:"layers"`
	CreatedAt      string       `json:"createdAt"`
}

// RecordID implements the mutation record contract.
func (c Customization) RecordID() int64 { return c.ID }
