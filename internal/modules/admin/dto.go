package admin

import (
	"time"

	"travelgoals/internal/domain"
)

type DecideRequest struct {
	Notes string `json:"notes"`
}

// QueueItem is one entry in the unified pending-approvals queue.
type QueueItem struct {
	Kind        string    `json:"kind"` // vendor | destination | package
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	VendorID    int64     `json:"vendor_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`

	Vendor      *domain.VendorProfile      `json:"vendor,omitempty"`
	Destination *domain.PendingDestination `json:"destination,omitempty"`
	Package     *domain.PendingPackage     `json:"package,omitempty"`
}

type Statistics struct {
	TotalUsers       int64 `json:"total_users"`
	TotalCustomers   int64 `json:"total_customers"`
	TotalVendors     int64 `json:"total_vendors"`
	TotalPackages    int64 `json:"total_packages"`
	TotalBookings    int64 `json:"total_bookings"`
	BookingsToday    int64 `json:"bookings_today"`
	PendingVendors   int64 `json:"pending_vendors"`
	PendingApprovals int64 `json:"pending_approvals"`
}
