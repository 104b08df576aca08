package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) DB() *gorm.DB { return r.db }

// PackageFilter narrows the customer-facing package query. Zero values mean
// "no constraint". This is the contract the AI booking assistant fills in
// after parsing a natural-language request.
type PackageFilter struct {
	DestinationID      int64
	DestinationKeyword string
	MaxPrice           *decimal.Decimal
	MinDuration        int
	MaxDuration        int
	MaxTravelers       int
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Vendor").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	return translateError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error
}

func (r *PackageRepository) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Package, error) {
	var out []domain.Package
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Search returns active packages from the verified-vendor roster matching
// the filter. The keyword match is fuzzy across destination name/country
// and the package's own text, mirroring how customers phrase requests.
func (r *PackageRepository) Search(ctx context.Context, f PackageFilter) ([]domain.Package, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Package{}).
		Preload("Destination").
		Preload("Vendor").
		Joins("JOIN destinations d ON d.id = packages.destination_id").
		Joins("JOIN vendor_profiles vp ON vp.id = packages.vendor_id").
		Joins("JOIN users u ON u.id = vp.user_id").
		Where("packages.is_active = ?", true).
		Where("vp.verification_status = ? AND u.active = ?", domain.VerificationVerified, true)

	if f.DestinationID > 0 {
		q = q.Where("packages.destination_id = ?", f.DestinationID)
	}
	if kw := strings.TrimSpace(f.DestinationKeyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where(
			"LOWER(d.name) LIKE ? OR LOWER(d.country) LIKE ? OR LOWER(packages.description) LIKE ? OR LOWER(packages.includes) LIKE ?",
			like, like, like, like,
		)
	}
	if f.MaxPrice != nil {
		q = q.Where("COALESCE(packages.economy_adult_price, packages.adult_price) <= ?", *f.MaxPrice)
	}
	if f.MinDuration > 0 {
		q = q.Where("packages.duration_days >= ?", f.MinDuration)
	}
	if f.MaxDuration > 0 {
		q = q.Where("packages.duration_days <= ?", f.MaxDuration)
	}
	if f.MaxTravelers > 0 {
		q = q.Where("packages.max_travelers = 0 OR packages.max_travelers >= ?", f.MaxTravelers)
	}

	var out []domain.Package
	err := q.Order("COALESCE(packages.economy_adult_price, packages.adult_price) ASC").Find(&out).Error
	return out, err
}
