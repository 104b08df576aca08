package admin

import (
	"context"
	"sort"
	"strings"
	"time"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

type Service struct {
	users    *repository.UserRepository
	vendors  *repository.VendorRepository
	bookings *repository.BookingRepository
	pending  *repository.PendingRepository
	notifs   NotificationSender
}

type NotificationSender interface {
	NotifyVendorVerified(ctx context.Context, userID int64) error
	NotifyVendorRejected(ctx context.Context, userID int64, reason string) error
}

func NewService(
	users *repository.UserRepository,
	vendors *repository.VendorRepository,
	bookings *repository.BookingRepository,
	pending *repository.PendingRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		users:    users,
		vendors:  vendors,
		bookings: bookings,
		pending:  pending,
		notifs:   notifs,
	}
}

// -------------------- Vendor verification --------------------

func (s *Service) GetPendingVendors(ctx context.Context) ([]domain.VendorProfile, error) {
	return s.vendors.ListPending(ctx)
}

// VerifyVendor moves a pending vendor application to verified.
func (s *Service) VerifyVendor(ctx context.Context, vendorID, adminID int64, notes string) (*domain.VendorProfile, error) {
	return s.decideVendor(ctx, vendorID, adminID, domain.VerificationVerified, notes)
}

// RejectVendor suspends a pending vendor application. Notes are required so
// the applicant learns why.
func (s *Service) RejectVendor(ctx context.Context, vendorID, adminID int64, notes string) (*domain.VendorProfile, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrNotesRequired
	}
	return s.decideVendor(ctx, vendorID, adminID, domain.VerificationSuspended, notes)
}

func (s *Service) decideVendor(ctx context.Context, vendorID, adminID int64, status domain.VerificationStatus, notes string) (*domain.VendorProfile, error) {
	profile, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	if profile.Status != domain.VerificationPending {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	profile.Status = status
	profile.ReviewedBy = &adminID
	profile.ReviewedAt = &now
	profile.AdminNotes = notes

	if err := s.vendors.Update(ctx, profile); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if status == domain.VerificationVerified {
			_ = s.notifs.NotifyVendorVerified(ctx, profile.UserID)
		} else {
			_ = s.notifs.NotifyVendorRejected(ctx, profile.UserID, notes)
		}
	}
	return profile, nil
}

// -------------------- Pending approvals queue --------------------

// GetApprovalQueue unifies pending vendor applications, destination
// submissions and package submissions, newest first.
func (s *Service) GetApprovalQueue(ctx context.Context) ([]QueueItem, error) {
	vendors, err := s.vendors.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	destinations, err := s.pending.ListPendingDestinations(ctx)
	if err != nil {
		return nil, err
	}
	packages, err := s.pending.ListPendingPackages(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]QueueItem, 0, len(vendors)+len(destinations)+len(packages))
	for i := range vendors {
		v := vendors[i]
		queue = append(queue, QueueItem{
			Kind:        "vendor",
			ID:          v.ID,
			Title:       v.CompanyName,
			VendorID:    v.ID,
			SubmittedAt: v.CreatedAt,
			Vendor:      &v,
		})
	}
	for i := range destinations {
		d := destinations[i]
		queue = append(queue, QueueItem{
			Kind:        "destination",
			ID:          d.ID,
			Title:       d.Name,
			VendorID:    d.VendorID,
			SubmittedAt: d.SubmittedAt,
			Destination: &d,
		})
	}
	for i := range packages {
		p := packages[i]
		queue = append(queue, QueueItem{
			Kind:        "package",
			ID:          p.ID,
			Title:       p.Name,
			VendorID:    p.VendorID,
			SubmittedAt: p.SubmittedAt,
			Package:     &p,
		})
	}

	sort.Slice(queue, func(i, j int) bool {
		return queue[i].SubmittedAt.After(queue[j].SubmittedAt)
	})
	return queue, nil
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context, role string, page, limit int) ([]domain.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := s.users.DB().WithContext(ctx).Model(&domain.User{})
	if strings.TrimSpace(role) != "" {
		q = q.Where("role = ?", strings.TrimSpace(role))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, int(total), nil
}

// SetUserActive enables or disables a login. Inactive vendors drop out of
// the customer-facing roster immediately.
func (s *Service) SetUserActive(ctx context.Context, userID int64, active bool) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Active = active
	if err := s.users.DB().WithContext(ctx).Model(u).Update("active", active).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// -------------------- Bookings --------------------

func (s *Service) ListBookings(ctx context.Context, page, limit int) ([]domain.Booking, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListAll(ctx, limit, (page-1)*limit)
}

// -------------------- Statistics --------------------

func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}
	db := s.users.DB().WithContext(ctx)

	if err := db.Model(&domain.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleCustomer).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleVendor).Count(&stats.TotalVendors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Package{}).Count(&stats.TotalPackages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.VendorProfile{}).
		Where("verification_status = ?", domain.VerificationPending).
		Count(&stats.PendingVendors).Error; err != nil {
		return nil, err
	}

	var pendingDest, pendingPkg int64
	if err := db.Model(&domain.PendingDestination{}).
		Where("status = ?", domain.SubmissionPending).
		Count(&pendingDest).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.PendingPackage{}).
		Where("status = ?", domain.SubmissionPending).
		Count(&pendingPkg).Error; err != nil {
		return nil, err
	}
	stats.PendingApprovals = stats.PendingVendors + pendingDest + pendingPkg

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	if err := db.Model(&domain.Booking{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&stats.BookingsToday).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
