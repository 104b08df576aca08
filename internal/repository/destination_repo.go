package repository

import (
	"context"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) DB() *gorm.DB { return r.db }

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return translateError(r.db.WithContext(ctx).Create(d).Error)
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}
