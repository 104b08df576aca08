package domain

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// ReviewMeta is the shared moderation trail on a pending submission.
type ReviewMeta struct {
	Status      SubmissionStatus `json:"status" gorm:"size:20;default:'pending'"`
	SubmittedAt time.Time        `json:"submitted_at" gorm:"autoCreateTime"`
	ReviewedAt  *time.Time       `json:"reviewed_at,omitempty"`
	ReviewedBy  *int64           `json:"reviewed_by,omitempty"`
	AdminNotes  string           `json:"admin_notes,omitempty" gorm:"type:text"`
}

func (m *ReviewMeta) Decided() bool {
	return m.Status != SubmissionPending
}

func (m *ReviewMeta) Decide(status SubmissionStatus, reviewerID int64, notes string, at time.Time) {
	m.Status = status
	m.ReviewedBy = &reviewerID
	m.ReviewedAt = &at
	m.AdminNotes = notes
}

// PendingDestination is a vendor-submitted destination awaiting moderation.
type PendingDestination struct {
	ID          int64  `json:"id"`
	VendorID    int64  `json:"vendor_id"`
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string `json:"image_url,omitempty"`

	ReviewMeta `gorm:"embedded"`

	Vendor *VendorProfile `json:"vendor,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// Materialize builds the live Destination created on approval.
func (p *PendingDestination) Materialize() *Destination {
	return &Destination{
		Name:        p.Name,
		Country:     p.Country,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

// PendingPackage mirrors Package plus the moderation trail.
type PendingPackage struct {
	ID            int64  `json:"id"`
	VendorID      int64  `json:"vendor_id"`
	DestinationID int64  `json:"destination_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
	DurationDays  int    `json:"duration_days"`
	MaxTravelers  int    `json:"max_travelers"`
	Includes      string `json:"includes,omitempty" gorm:"type:text"`
	ImageURL      string `json:"image_url,omitempty"`

	PriceTable `json:"prices" gorm:"embedded"`
	ReviewMeta `gorm:"embedded"`

	Vendor      *VendorProfile `json:"vendor,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Destination *Destination   `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

// Materialize builds the live Package created on approval. New packages go
// live active.
func (p *PendingPackage) Materialize() *Package {
	return &Package{
		VendorID:      p.VendorID,
		DestinationID: p.DestinationID,
		Name:          p.Name,
		Description:   p.Description,
		DurationDays:  p.DurationDays,
		MaxTravelers:  p.MaxTravelers,
		Includes:      p.Includes,
		ImageURL:      p.ImageURL,
		IsActive:      true,
		PriceTable:    p.PriceTable,
	}
}
