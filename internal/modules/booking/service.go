package booking

import (
	"context"
	"strings"
	"time"

	"travelgoals/internal/domain"
	"travelgoals/internal/modules/pricing"
	"travelgoals/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	packages PackageReader
	vendors  VendorRoster
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	packages PackageReader,
	vendors VendorRoster,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		packages: packages,
		vendors:  vendors,
		notifs:   notifs,
	}
}

// CreateBooking validates the request, prices it server-side via the
// pricing calculator and stores the booking as pending/Unpaid. The quoted
// total is authoritative; the client never supplies a price.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	fareType := domain.FareType(req.FareType)
	if fareType != domain.FareOneWay && fareType != domain.FareRoundTrip {
		return nil, ErrValidation
	}

	fareClass := domain.FareClass(req.FareClass)
	if fareClass == "" {
		fareClass = domain.FareEconomy
	}

	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return nil, ErrValidation
	}

	var returnDate *time.Time
	switch fareType {
	case domain.FareRoundTrip:
		if req.ReturnDate == "" || req.ReturnTime == "" {
			return nil, ErrValidation
		}
		rd, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return nil, ErrValidation
		}
		if rd.Before(departure) {
			return nil, ErrReturnBeforeStart
		}
		returnDate = &rd
	case domain.FareOneWay:
		if req.ReturnDate != "" || req.ReturnTime != "" {
			return nil, ErrUnexpectedReturn
		}
	}

	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, ErrPackageNotFound
	}
	ok, err := s.vendors.IsVerifiedActive(ctx, pkg.VendorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPackageNotFound
	}

	pax := domain.PassengerCounts{Adults: req.NumAdults, Children: req.NumChildren, Infants: req.NumInfants}
	quote, err := pricing.Calculate(pkg, fareClass, pax)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID:           userID,
		PackageID:        pkg.ID,
		FromLocation:     strings.TrimSpace(req.FromLocation),
		ToLocation:       strings.TrimSpace(req.ToLocation),
		DepartureDate:    departure,
		DepartureTime:    req.DepartureTime,
		ReturnDate:       returnDate,
		ReturnTime:       req.ReturnTime,
		PreferredAirline: req.PreferredAirline,
		PreferredSeating: req.PreferredSeating,
		NumAdults:        pax.Adults,
		NumChildren:      pax.Children,
		NumInfants:       pax.Infants,
		NumTravelers:     pax.Total(),
		FareType:         fareType,
		FareClass:        fareClass,
		TotalPrice:       quote.Total,
		Message:          strings.TrimSpace(req.Message),
		CustomerFullName: strings.TrimSpace(req.FullName),
		CustomerPhone:    strings.TrimSpace(req.Phone),
		CustomerEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		Status:           domain.BookingPending,
		PaymentStatus:    domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// GetVendorBookings lists bookings for the calling vendor's packages.
func (s *Service) GetVendorBookings(ctx context.Context, vendorUserID int64) ([]domain.Booking, error) {
	profile, err := s.vendors.GetByUserID(ctx, vendorUserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.bookings.ListByVendor(ctx, profile.ID)
}

// CancelBooking cancels a pending or confirmed booking at the customer's
// or an admin's request. Completed and already-cancelled bookings are
// immutable history.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actorRole != domain.RoleAdmin && b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.Terminal() {
		return nil, ErrBookingTerminal
	}

	changed, err := s.bookings.Cancel(ctx, bookingID, reason, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		// lost a race against completion or another cancel
		return nil, ErrBookingTerminal
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b, reason)
	}
	return b, nil
}

// CompleteElapsed is the reconciliation sweep run by cmd/worker: confirmed
// bookings whose travel dates have passed become completed.
func (s *Service) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	return s.bookings.CompleteElapsed(ctx, now)
}
