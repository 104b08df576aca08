package email

import (
	"context"
	"log"

	"travelgoals/internal/kafka"
)

// Sender delivers booking notifications. The current implementation only
// logs; swap it for a real SMTP/provider client when one exists.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("email to=%s event=%s booking_id=%d status=%s payment_status=%s",
		event.Email, event.Type, event.BookingID, event.Status, event.PaymentStatus)
	return nil
}
