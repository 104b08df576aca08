package domain

import "time"

type Destination struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:200" validate:"required"`
	Country     string    `json:"country" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
