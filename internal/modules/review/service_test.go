package review

import (
	"context"
	"runtime"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"travelgoals/internal/database"
	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

func setup(t *testing.T) (*Service, *gorm.DB, *domain.Package) {
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

	user := &domain.User{
		Username:     "travelco",
		Email:        "vendor@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleVendor,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)
	profile := &domain.VendorProfile{UserID: user.ID, CompanyName: "Travel Co", Status: domain.VerificationVerified}
	require.NoError(t, db.Create(profile).Error)
	dest := &domain.Destination{Name: "Paris", Country: "France"}
	require.NoError(t, db.Create(dest).Error)
	pkg := &domain.Package{
		VendorID:      profile.ID,
		DestinationID: dest.ID,
		Name:          "Paris Romance Tour",
		IsActive:      true,
		PriceTable:    domain.PriceTable{AdultPrice: decimal.RequireFromString("1200")},
	}
	require.NoError(t, db.Create(pkg).Error)

	service := NewService(repository.NewReviewRepository(db), repository.NewPackageRepository(db), nil)
	return service, db, pkg
}

func TestService_Submit(t *testing.T) {
	service, _, pkg := setup(t)

	rev, err := service.Submit(context.Background(), nil, "", SubmitReviewRequest{
		PackageID: pkg.ID,
		Rating:    5,
		Comment:   "Unforgettable trip",
	})

	require.NoError(t, err)
	assert.Equal(t, "Anonymous", rev.UserName)
	assert.Nil(t, rev.UserID)
}

func TestService_Submit_RatingBounds(t *testing.T) {
	service, _, pkg := setup(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Submit(context.Background(), nil, "", SubmitReviewRequest{
			PackageID: pkg.ID,
			Rating:    rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d must be rejected", rating)
	}
}

func TestService_Submit_UnknownPackage(t *testing.T) {
	service, _, _ := setup(t)

	_, err := service.Submit(context.Background(), nil, "", SubmitReviewRequest{
		PackageID: 9999,
		Rating:    4,
	})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestService_Summary(t *testing.T) {
	service, _, pkg := setup(t)

	// no reviews yet: count 0, nil average
	summary, err := service.SummaryForPackage(context.Background(), pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Count)
	assert.Nil(t, summary.Average)

	for _, rating := range []int{5, 4, 3} {
		_, err := service.Submit(context.Background(), nil, "traveler", SubmitReviewRequest{
			PackageID: pkg.ID,
			Rating:    rating,
		})
		require.NoError(t, err)
	}

	summary, err = service.SummaryForPackage(context.Background(), pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Count)
	require.NotNil(t, summary.Average)
	assert.InDelta(t, 4.0, *summary.Average, 0.001)
}

func TestService_Summarize_NoReviews(t *testing.T) {
	service, _, pkg := setup(t)

	digest, err := service.Summarize(context.Background(), pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, "No reviews yet for this package.", digest)
}
