package repository

import (
	"context"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return translateError(r.db.WithContext(ctx).Create(rev).Error)
}

func (r *ReviewRepository) ListByPackage(ctx context.Context, packageID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("package_id = ?", packageID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Summary computes the rating aggregate for one package. Packages without
// reviews report a nil average, not zero.
func (r *ReviewRepository) Summary(ctx context.Context, packageID int64) (*domain.RatingSummary, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("AVG(rating) AS average, COUNT(1) AS count").
		Where("package_id = ?", packageID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	s := &domain.RatingSummary{PackageID: packageID, Count: row.Count}
	if row.Count > 0 {
		s.Average = row.Average
	}
	return s, nil
}
