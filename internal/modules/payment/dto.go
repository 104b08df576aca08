package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"travelgoals/internal/domain"
)

type SubmitPaymentRequest struct {
	CardNumber  string `json:"card_number" validate:"required"`
	CardHolder  string `json:"card_holder" validate:"required"`
	ExpiryMonth int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"required"`
	CVV         string `json:"cvv" validate:"required,min=3,max=4"`
}

// PaymentInfo is what the checkout page renders before the card form.
type PaymentInfo struct {
	BookingID     int64                `json:"booking_id"`
	PackageName   string               `json:"package_name"`
	Destination   string               `json:"destination,omitempty"`
	NumTravelers  int                  `json:"num_travelers"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	Status        domain.BookingStatus `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

type PaymentResult struct {
	BookingID     int64                `json:"booking_id"`
	Status        domain.BookingStatus `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	TransactionID string               `json:"transaction_id,omitempty"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
}

type Receipt struct {
	BookingID     int64                `json:"booking_id"`
	TransactionID string               `json:"transaction_id"`
	PaymentMethod string               `json:"payment_method"`
	PaidAt        *time.Time           `json:"paid_at"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	PackageName   string               `json:"package_name"`
	Destination   string               `json:"destination,omitempty"`
	FromLocation  string               `json:"from_location"`
	ToLocation    string               `json:"to_location"`
	DepartureDate time.Time            `json:"departure_date"`
	ReturnDate    *time.Time           `json:"return_date,omitempty"`
	NumTravelers  int                  `json:"num_travelers"`
	FareType      domain.FareType      `json:"fare_type"`
	FareClass     domain.FareClass     `json:"fare_class"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	Status        domain.BookingStatus `json:"status"`
}
