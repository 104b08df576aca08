package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FareClass string

const (
	FareEconomy  FareClass = "economy"
	FareBusiness FareClass = "business"
)

// PriceTable holds per-passenger-type prices for a package. Base prices are
// always set; tier prices for a (fare class × passenger type) pair may be
// nil, in which case the base price for that passenger type applies.
type PriceTable struct {
	AdultPrice  decimal.Decimal `json:"adult_price" gorm:"type:decimal(10,2)"`
	ChildPrice  decimal.Decimal `json:"child_price" gorm:"type:decimal(10,2)"`
	InfantPrice decimal.Decimal `json:"infant_price" gorm:"type:decimal(10,2)"`

	EconomyAdultPrice  *decimal.Decimal `json:"economy_adult_price,omitempty" gorm:"type:decimal(10,2)"`
	EconomyChildPrice  *decimal.Decimal `json:"economy_child_price,omitempty" gorm:"type:decimal(10,2)"`
	EconomyInfantPrice *decimal.Decimal `json:"economy_infant_price,omitempty" gorm:"type:decimal(10,2)"`

	BusinessAdultPrice  *decimal.Decimal `json:"business_adult_price,omitempty" gorm:"type:decimal(10,2)"`
	BusinessChildPrice  *decimal.Decimal `json:"business_child_price,omitempty" gorm:"type:decimal(10,2)"`
	BusinessInfantPrice *decimal.Decimal `json:"business_infant_price,omitempty" gorm:"type:decimal(10,2)"`
}

type Package struct {
	ID            int64  `json:"id"`
	VendorID      int64  `json:"vendor_id" validate:"required"`
	DestinationID int64  `json:"destination_id" validate:"required"`
	Name          string `json:"name" gorm:"size:200" validate:"required"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
	DurationDays  int    `json:"duration_days"`
	MaxTravelers  int    `json:"max_travelers"` // 0 = unlimited
	Includes      string `json:"includes,omitempty" gorm:"type:text"`
	ImageURL      string `json:"image_url,omitempty"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`

	PriceTable `json:"prices" gorm:"embedded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vendor      *VendorProfile `json:"vendor,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Destination *Destination   `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}
