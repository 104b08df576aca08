package repository

import (
	"context"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type PendingRepository struct {
	db *gorm.DB
}

func NewPendingRepository(db *gorm.DB) *PendingRepository {
	return &PendingRepository{db: db}
}

func (r *PendingRepository) DB() *gorm.DB { return r.db }

func (r *PendingRepository) CreateDestination(ctx context.Context, p *domain.PendingDestination) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PendingRepository) CreatePackage(ctx context.Context, p *domain.PendingPackage) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PendingRepository) ListPendingDestinations(ctx context.Context) ([]domain.PendingDestination, error) {
	var out []domain.PendingDestination
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("status = ?", domain.SubmissionPending).
		Order("submitted_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PendingRepository) ListPendingPackages(ctx context.Context) ([]domain.PendingPackage, error) {
	var out []domain.PendingPackage
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Destination").
		Where("status = ?", domain.SubmissionPending).
		Order("submitted_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PendingRepository) ListDestinationsByVendor(ctx context.Context, vendorID int64) ([]domain.PendingDestination, error) {
	var out []domain.PendingDestination
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("submitted_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PendingRepository) ListPackagesByVendor(ctx context.Context, vendorID int64) ([]domain.PendingPackage, error) {
	var out []domain.PendingPackage
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("vendor_id = ?", vendorID).
		Order("submitted_at DESC").
		Find(&out).Error
	return out, err
}
