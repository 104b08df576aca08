package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	PackageID int64     `json:"package_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Package *Package `json:"package,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// RatingSummary aggregates reviews for one package. Average is nil when the
// package has no reviews, not zero.
type RatingSummary struct {
	PackageID int64    `json:"package_id"`
	Average   *float64 `json:"average"`
	Count     int64    `json:"count"`
}
