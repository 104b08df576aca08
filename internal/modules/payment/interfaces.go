package payment

import (
	"context"
	"time"

	"travelgoals/internal/domain"
)

// BookingRepository is the slice of the booking store the payment flow
// needs. MarkPaidConfirm must atomically set Paid and flip a pending
// booking to confirmed; both guarded methods return false when the row
// was not in the expected state.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetailed(ctx context.Context, id int64) (*domain.Booking, error)
	SetPaymentStatus(ctx context.Context, id int64, from, to domain.PaymentStatus) (bool, error)
	MarkPaidConfirm(ctx context.Context, id int64, method, transactionID string, paidAt time.Time) (bool, error)
}

type NotificationSender interface {
	NotifyPaymentSucceeded(ctx context.Context, b *domain.Booking) error
	NotifyPaymentFailed(ctx context.Context, b *domain.Booking, reason string) error
}
