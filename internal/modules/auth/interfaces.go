package auth

import (
	"context"

	"travelgoals/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type VendorRepository interface {
	Create(ctx context.Context, v *domain.VendorProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
