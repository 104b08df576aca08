package repository

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"travelgoals/internal/database"
	"travelgoals/internal/domain"
)

func setupBookingDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedBookingPackage(t *testing.T, db *gorm.DB) *domain.Package {
	user := &domain.User{
		Username:     "travelco",
		Email:        "vendor@travelco.example",
		PasswordHash: "hashed",
		FullName:     "Travel Co",
		Role:         domain.RoleVendor,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &domain.VendorProfile{
		UserID:      user.ID,
		CompanyName: "Travel Co",
		Status:      domain.VerificationVerified,
	}
	require.NoError(t, db.Create(profile).Error)

	dest := &domain.Destination{Name: "Paris", Country: "France"}
	require.NoError(t, db.Create(dest).Error)

	pkg := &domain.Package{
		VendorID:      profile.ID,
		DestinationID: dest.ID,
		Name:          "Paris Romance Tour",
		DurationDays:  5,
		IsActive:      true,
		PriceTable: domain.PriceTable{
			AdultPrice:  decimal.RequireFromString("1200.00"),
			ChildPrice:  decimal.RequireFromString("900.00"),
			InfantPrice: decimal.RequireFromString("300.00"),
		},
	}
	require.NoError(t, db.Create(pkg).Error)
	return pkg
}

func midnight(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func createBooking(t *testing.T, repo *BookingRepository, pkg *domain.Package, status domain.BookingStatus, departure time.Time, returnDate *time.Time) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		UserID:           1,
		PackageID:        pkg.ID,
		FromLocation:     "Karachi",
		ToLocation:       "Paris",
		DepartureDate:    departure,
		DepartureTime:    "09:30",
		ReturnDate:       returnDate,
		NumAdults:        1,
		NumTravelers:     1,
		FareType:         domain.FareOneWay,
		FareClass:        domain.FareEconomy,
		TotalPrice:       decimal.RequireFromString("1200.00"),
		CustomerFullName: "Ayesha Khan",
		CustomerPhone:    "+92 300 5551234",
		CustomerEmail:    "ayesha@test.com",
		Status:           status,
		PaymentStatus:    domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestCompleteElapsed_PastTrips(t *testing.T) {
	db := setupBookingDB(t)
	repo := NewBookingRepository(db)
	pkg := seedBookingPackage(t, db)

	returned := midnight(t, "2026-08-25")
	roundTrip := createBooking(t, repo, pkg, domain.BookingConfirmed, midnight(t, "2026-08-20"), &returned)
	oneWay := createBooking(t, repo, pkg, domain.BookingConfirmed, midnight(t, "2026-08-31"), nil)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	count, err := repo.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, id := range []int64{roundTrip.ID, oneWay.ID} {
		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingCompleted, got.Status)
	}
}

func TestCompleteElapsed_SameDayTripStaysConfirmed(t *testing.T) {
	db := setupBookingDB(t)
	repo := NewBookingRepository(db)
	pkg := seedBookingPackage(t, db)

	// Departs tonight; at noon the trip has not happened yet.
	b := createBooking(t, repo, pkg, domain.BookingConfirmed, midnight(t, "2026-09-01"), nil)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	count, err := repo.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)

	// Still cancellable until the day is over.
	ok, err := repo.Cancel(context.Background(), b.ID, "change of plans", now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompleteElapsed_SameDayReturnStaysConfirmed(t *testing.T) {
	db := setupBookingDB(t)
	repo := NewBookingRepository(db)
	pkg := seedBookingPackage(t, db)

	returned := midnight(t, "2026-09-01")
	b := createBooking(t, repo, pkg, domain.BookingConfirmed, midnight(t, "2026-08-27"), &returned)

	now := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
	count, err := repo.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)

	// The next day's sweep retires it.
	count, err = repo.CompleteElapsed(context.Background(), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCompleteElapsed_FutureAndNonConfirmedUntouched(t *testing.T) {
	db := setupBookingDB(t)
	repo := NewBookingRepository(db)
	pkg := seedBookingPackage(t, db)

	future := createBooking(t, repo, pkg, domain.BookingConfirmed, midnight(t, "2026-10-01"), nil)
	pendingElapsed := createBooking(t, repo, pkg, domain.BookingPending, midnight(t, "2026-08-01"), nil)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	count, err := repo.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err := repo.GetByID(context.Background(), future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)

	// Unpaid pending bookings never complete; they either get paid or cancelled.
	got, err = repo.GetByID(context.Background(), pendingElapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status)
}
