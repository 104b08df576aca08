package repository

import (
	"context"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) DB() *gorm.DB { return r.db }

func (r *VendorRepository) Create(ctx context.Context, v *domain.VendorProfile) error {
	return translateError(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.VendorProfile, error) {
	var v domain.VendorProfile
	if err := r.db.WithContext(ctx).Preload("User").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error) {
	var v domain.VendorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) Update(ctx context.Context, v *domain.VendorProfile) error {
	return translateError(r.db.WithContext(ctx).Save(v).Error)
}

func (r *VendorRepository) List(ctx context.Context) ([]domain.VendorProfile, error) {
	var out []domain.VendorProfile
	err := r.db.WithContext(ctx).
		Order("rating DESC, company_name").
		Find(&out).Error
	return out, err
}

// ListVerifiedActive is the active-vendor roster: verified profiles whose
// owning user is active. Only these vendors' packages surface to customers.
func (r *VendorRepository) ListVerifiedActive(ctx context.Context) ([]domain.VendorProfile, error) {
	var out []domain.VendorProfile
	err := r.db.WithContext(ctx).
		Joins("JOIN users u ON u.id = vendor_profiles.user_id").
		Where("vendor_profiles.verification_status = ? AND u.active = ?", domain.VerificationVerified, true).
		Order("vendor_profiles.company_name").
		Find(&out).Error
	return out, err
}

func (r *VendorRepository) ListPending(ctx context.Context) ([]domain.VendorProfile, error) {
	var out []domain.VendorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", domain.VerificationPending).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// IsVerifiedActive checks the roster condition for a single vendor.
func (r *VendorRepository) IsVerifiedActive(ctx context.Context, vendorID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.VendorProfile{}).
		Joins("JOIN users u ON u.id = vendor_profiles.user_id").
		Where("vendor_profiles.id = ? AND vendor_profiles.verification_status = ? AND u.active = ?",
			vendorID, domain.VerificationVerified, true).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
