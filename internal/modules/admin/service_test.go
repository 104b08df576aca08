package admin

import (
	"context"
	"runtime"
	"testing"
	"time"

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

func setupService(t *testing.T) (*Service, *gorm.DB) {
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

	service := NewService(
		repository.NewUserRepository(db),
		repository.NewVendorRepository(db),
		repository.NewBookingRepository(db),
		repository.NewPendingRepository(db),
		nil,
	)
	return service, db
}

func seedVendorApplication(t *testing.T, db *gorm.DB, username string) *domain.VendorProfile {
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleVendor,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &domain.VendorProfile{
		UserID:      user.ID,
		CompanyName: username + " travel",
		Status:      domain.VerificationPending,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func TestService_VerifyVendor(t *testing.T) {
	service, db := setupService(t)
	profile := seedVendorApplication(t, db, "newvendor")

	decided, err := service.VerifyVendor(context.Background(), profile.ID, 1, "docs check out")
	require.NoError(t, err)

	assert.Equal(t, domain.VerificationVerified, decided.Status)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, int64(1), *decided.ReviewedBy)
	assert.NotNil(t, decided.ReviewedAt)
}

func TestService_RejectVendor_RequiresNotes(t *testing.T) {
	service, db := setupService(t)
	profile := seedVendorApplication(t, db, "newvendor")

	_, err := service.RejectVendor(context.Background(), profile.ID, 1, "")
	assert.ErrorIs(t, err, ErrNotesRequired)

	decided, err := service.RejectVendor(context.Background(), profile.ID, 1, "license missing")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationSuspended, decided.Status)
}

func TestService_VerifyVendor_AlreadyReviewed(t *testing.T) {
	service, db := setupService(t)
	profile := seedVendorApplication(t, db, "newvendor")

	_, err := service.VerifyVendor(context.Background(), profile.ID, 1, "")
	require.NoError(t, err)

	_, err = service.VerifyVendor(context.Background(), profile.ID, 1, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_GetApprovalQueue_OrderedNewestFirst(t *testing.T) {
	service, db := setupService(t)
	profile := seedVendorApplication(t, db, "newvendor")

	older := &domain.PendingDestination{
		VendorID: profile.ID,
		Name:     "Santorini",
		Country:  "Greece",
	}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Model(older).Update("submitted_at", time.Now().Add(-48*time.Hour)).Error)

	newer := &domain.PendingDestination{
		VendorID: profile.ID,
		Name:     "Kyoto",
		Country:  "Japan",
	}
	require.NoError(t, db.Create(newer).Error)

	queue, err := service.GetApprovalQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 3) // vendor application + two destinations

	for i := 1; i < len(queue); i++ {
		assert.False(t, queue[i-1].SubmittedAt.Before(queue[i].SubmittedAt),
			"queue must be ordered newest first")
	}
}

func TestService_GetStatistics(t *testing.T) {
	service, db := setupService(t)
	profile := seedVendorApplication(t, db, "newvendor")

	customer := &domain.User{
		Username:     "customer",
		Email:        "customer@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleCustomer,
		Active:       true,
	}
	require.NoError(t, db.Create(customer).Error)

	require.NoError(t, db.Create(&domain.PendingDestination{
		VendorID: profile.ID,
		Name:     "Santorini",
		Country:  "Greece",
	}).Error)

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.TotalVendors)
	assert.Equal(t, int64(1), stats.PendingVendors)
	assert.Equal(t, int64(2), stats.PendingApprovals)
}
