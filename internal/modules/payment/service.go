package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{bookings: bookings, notifs: notifs}
}

// GetPaymentInfo returns the checkout summary for a booking the caller owns.
func (s *Service) GetPaymentInfo(ctx context.Context, bookingID, userID int64) (*PaymentInfo, error) {
	b, err := s.loadOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	info := &PaymentInfo{
		BookingID:     b.ID,
		NumTravelers:  b.NumTravelers,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	}
	if b.Package != nil {
		info.PackageName = b.Package.Name
		if b.Package.Destination != nil {
			info.Destination = b.Package.Destination.Name
		}
	}
	return info, nil
}

// SubmitPayment runs the card charge for a booking. The row moves to
// Processing first, then either Failed (card rejected, booking stays
// pending so the customer can retry) or Paid. Paid and the pending →
// confirmed flip commit in one transaction, so a second submission for
// the same booking is an idempotent conflict rather than a double charge.
func (s *Service) SubmitPayment(ctx context.Context, bookingID, userID int64, req SubmitPaymentRequest) (*PaymentResult, error) {
	b, err := s.loadOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if b.Terminal() {
		return nil, ErrBookingTerminal
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	// Claim the row. A failed earlier attempt is retryable.
	claimed, err := s.bookings.SetPaymentStatus(ctx, b.ID, domain.PaymentUnpaid, domain.PaymentProcessing)
	if err != nil {
		return nil, err
	}
	if !claimed {
		claimed, err = s.bookings.SetPaymentStatus(ctx, b.ID, domain.PaymentFailed, domain.PaymentProcessing)
		if err != nil {
			return nil, err
		}
	}
	if !claimed {
		// Another submission got there first.
		return nil, ErrAlreadyPaid
	}

	if reason, cardErr := s.checkCard(req); cardErr != nil {
		if _, ferr := s.bookings.SetPaymentStatus(ctx, b.ID, domain.PaymentProcessing, domain.PaymentFailed); ferr != nil {
			return nil, ferr
		}
		if s.notifs != nil {
			_ = s.notifs.NotifyPaymentFailed(ctx, b, reason)
		}
		return nil, cardErr
	}

	number := normalizeCardNumber(req.CardNumber)
	transactionID := newTransactionID()
	paidAt := time.Now().UTC()

	changed, err := s.bookings.MarkPaidConfirm(ctx, b.ID, maskedMethod(number), transactionID, paidAt)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrAlreadyPaid
	}

	b, err = s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentSucceeded(ctx, b)
	}

	return &PaymentResult{
		BookingID:     b.ID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TransactionID: b.PaymentTransactionID,
		PaidAt:        b.PaymentDate,
	}, nil
}

// GetReceipt returns the receipt for a paid booking.
func (s *Service) GetReceipt(ctx context.Context, bookingID, userID int64, role domain.UserRole) (*Receipt, error) {
	b, err := s.bookings.GetDetailed(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, ErrBookingNotFound
	}

	r := &Receipt{
		BookingID:     b.ID,
		TransactionID: b.PaymentTransactionID,
		PaymentMethod: b.PaymentMethod,
		PaidAt:        b.PaymentDate,
		CustomerName:  b.CustomerFullName,
		CustomerEmail: b.CustomerEmail,
		FromLocation:  b.FromLocation,
		ToLocation:    b.ToLocation,
		DepartureDate: b.DepartureDate,
		ReturnDate:    b.ReturnDate,
		NumTravelers:  b.NumTravelers,
		FareType:      b.FareType,
		FareClass:     b.FareClass,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
	}
	if b.Package != nil {
		r.PackageName = b.Package.Name
		if b.Package.Destination != nil {
			r.Destination = b.Package.Destination.Name
		}
	}
	return r, nil
}

func (s *Service) loadOwned(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetDetailed(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) checkCard(req SubmitPaymentRequest) (string, error) {
	number := normalizeCardNumber(req.CardNumber)
	if !validCardNumber(number) {
		return "invalid card number", ErrCardInvalid
	}
	if !validExpiry(req.ExpiryMonth, req.ExpiryYear, time.Now()) {
		return "card expired", ErrCardExpired
	}
	if !validCVV(req.CVV) {
		return "invalid cvv", ErrCardInvalid
	}
	if strings.TrimSpace(req.CardHolder) == "" {
		return "missing card holder", ErrCardInvalid
	}
	return "", nil
}

// newTransactionID builds a reference like TXN4F2A91C07B3D.
func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN" + strings.ToUpper(raw[:12])
}
