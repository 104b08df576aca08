package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return translateError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLogin finds a user by username or email, case-insensitive on email.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", login, strings.ToLower(login)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return translateError(r.db.WithContext(ctx).Save(u).Error)
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR LOWER(email) = ?", username, strings.ToLower(email)).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
