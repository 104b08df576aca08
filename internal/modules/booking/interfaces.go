package booking

import (
	"context"
	"time"

	"travelgoals/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string, at time.Time) (bool, error)
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

type PackageReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

type VendorRoster interface {
	IsVerifiedActive(ctx context.Context, vendorID int64) (bool, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error)
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) error
}
