package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return translateError(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetDetailed loads the booking with its package, destination and user for
// payment-info and receipt projections.
func (r *BookingRepository) GetDetailed(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Preload("Package.Destination").
		Preload("User").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Preload("Package.Destination").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Joins("JOIN packages p ON p.id = bookings.package_id").
		Where("p.vendor_id = ?", vendorID).
		Order("bookings.created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

// SetPaymentStatus moves payment_status from one value to another and
// reports whether the row actually changed.
func (r *BookingRepository) SetPaymentStatus(ctx context.Context, id int64, from, to domain.PaymentStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND payment_status = ?", id, from).
		Update("payment_status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkPaidConfirm settles a payment: payment_status becomes Paid and a
// pending booking becomes confirmed in the same transaction, so confirmed
// is never observable without Paid. Returns false without side effects when
// the booking is already Paid.
func (r *BookingRepository) MarkPaidConfirm(ctx context.Context, id int64, method, transactionID string, paidAt time.Time) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		if b.PaymentStatus == domain.PaymentPaid {
			return nil
		}

		updates := map[string]any{
			"payment_status":         domain.PaymentPaid,
			"payment_method":         method,
			"payment_transaction_id": transactionID,
			"payment_date":           paidAt,
		}
		if b.Status == domain.BookingPending {
			updates["status"] = domain.BookingConfirmed
		}

		res := tx.Model(&domain.Booking{}).
			Where("id = ? AND payment_status <> ?", id, domain.PaymentPaid).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		changed = res.RowsAffected > 0
		return nil
	})
	return changed, err
}

// Cancel marks a pending or confirmed booking cancelled. Terminal bookings
// are left untouched and reported via the bool.
func (r *BookingRepository) Cancel(ctx context.Context, id int64, reason string, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status IN ?", id, []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Updates(map[string]any{
			"status":              domain.BookingCancelled,
			"cancelled_at":        at,
			"cancellation_reason": reason,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CompleteElapsed flips confirmed bookings whose travel dates have passed
// to completed. Run from the reconciliation worker, not request handlers.
// Travel dates are stored at midnight, so now is truncated to the start of
// its day before comparing; a trip departing or returning later today is
// still in progress and must stay cancellable.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status = ? AND COALESCE(return_date, departure_date) < ?", domain.BookingConfirmed, day).
		Update("status", domain.BookingCompleted)
	return tx.RowsAffected, tx.Error
}
