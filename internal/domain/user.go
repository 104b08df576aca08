package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
	RoleAdmin    UserRole = "admin"
)

type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationVerified  VerificationStatus = "verified"
	VerificationSuspended VerificationStatus = "suspended"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100" validate:"required"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255" validate:"required,email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role" gorm:"size:20"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorProfile is a vendor's business identity, 1:1 with a User.
// Deleting the user cascades to the profile and, through it, to the
// vendor's packages and their bookings.
type VendorProfile struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"user_id" gorm:"uniqueIndex"`
	CompanyName     string             `json:"company_name" validate:"required"`
	BusinessLicense string             `json:"business_license,omitempty"`
	CommissionRate  decimal.Decimal    `json:"commission_rate" gorm:"type:decimal(5,2)"`
	Rating          decimal.Decimal    `json:"rating" gorm:"type:decimal(3,2)"`
	Status          VerificationStatus `json:"verification_status" gorm:"column:verification_status;size:20;default:'pending'"`
	ImageURL        string             `json:"image_url,omitempty"`
	ReviewedBy      *int64             `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewed_at,omitempty"`
	AdminNotes      string             `json:"admin_notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time          `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
