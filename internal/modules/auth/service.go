package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

// Service contains all business logic for registration and login.
type Service struct {
	users   UserRepository
	vendors VendorRepository
	jwt     jwtService
}

func NewService(users UserRepository, vendors VendorRepository, jwt jwtService) *Service {
	return &Service{users: users, vendors: vendors, jwt: jwt}
}

// Register creates a customer account, or a vendor account with a pending
// VendorProfile that stays invisible to customers until an admin verifies it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if len(req.Password) < 6 {
		return nil, ErrWeakPassword
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role := domain.RoleCustomer
	if req.AccountType == string(domain.RoleVendor) {
		role = domain.RoleVendor
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if role == domain.RoleVendor {
		company := strings.TrimSpace(req.CompanyName)
		if company == "" {
			company = user.FullName
		}
		profile := &domain.VendorProfile{
			UserID:      user.ID,
			CompanyName: company,
			Status:      domain.VerificationPending,
		}
		if err := s.vendors.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByLogin(ctx, strings.TrimSpace(req.Login))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.Active {
		return nil, "", ErrAccountInactive
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
