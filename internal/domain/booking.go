package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "Unpaid"
	PaymentProcessing PaymentStatus = "Processing"
	PaymentPaid       PaymentStatus = "Paid"
	PaymentFailed     PaymentStatus = "Failed"
)

type FareType string

const (
	FareOneWay    FareType = "one_way"
	FareRoundTrip FareType = "round_trip"
)

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// Booking is immutable history once Status is completed or cancelled.
// Status and PaymentStatus evolve independently, except that confirmed
// is only ever set in the same transaction that sets Paid.
type Booking struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	PackageID int64 `json:"package_id" validate:"required"`

	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	DepartureDate time.Time  `json:"departure_date"`
	DepartureTime string     `json:"departure_time"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	ReturnTime    string     `json:"return_time,omitempty"`

	PreferredAirline string `json:"preferred_airline,omitempty"`
	PreferredSeating string `json:"preferred_seating,omitempty"`

	NumAdults    int       `json:"num_adults"`
	NumChildren  int       `json:"num_children"`
	NumInfants   int       `json:"num_infants"`
	NumTravelers int       `json:"num_travelers"`
	FareType     FareType  `json:"fare_type" gorm:"size:20"`
	FareClass    FareClass `json:"fare_class" gorm:"size:20"`

	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"`
	Message    string          `json:"message,omitempty" gorm:"type:text"`

	// Contact snapshot taken at booking time; kept even if the account
	// changes later.
	CustomerFullName string `json:"customer_full_name"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerEmail    string `json:"customer_email"`

	Status        BookingStatus `json:"status" gorm:"size:20"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:20"`

	PaymentMethod        string     `json:"payment_method,omitempty"`
	PaymentTransactionID string     `json:"payment_transaction_id,omitempty"`
	PaymentDate          *time.Time `json:"payment_date,omitempty"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Package *Package `json:"package,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// Terminal reports whether the booking reached an immutable state.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}
