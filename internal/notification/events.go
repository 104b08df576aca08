// Package notification publishes booking lifecycle events to the message
// bus. Services hold the sender behind a small interface and treat nil as
// "notifications disabled", so a broker outage never blocks a booking.
package notification

import (
	"context"
	"strconv"
	"time"

	"travelgoals/internal/domain"
	"travelgoals/internal/kafka"
)

type producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type Events struct {
	producer producer
	topic    string
}

func NewEvents(p *kafka.Producer, topic string) *Events {
	return &Events{producer: p, topic: topic}
}

func (e *Events) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	return e.publish(ctx, "booking_created", b, "")
}

func (e *Events) NotifyPaymentSucceeded(ctx context.Context, b *domain.Booking) error {
	return e.publish(ctx, "payment_succeeded", b, "")
}

func (e *Events) NotifyPaymentFailed(ctx context.Context, b *domain.Booking, reason string) error {
	return e.publish(ctx, "payment_failed", b, reason)
}

func (e *Events) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) error {
	return e.publish(ctx, "booking_cancelled", b, reason)
}

func (e *Events) NotifyVendorVerified(ctx context.Context, userID int64) error {
	return e.publishVendor(ctx, "vendor_verified", userID, "")
}

func (e *Events) NotifyVendorRejected(ctx context.Context, userID int64, reason string) error {
	return e.publishVendor(ctx, "vendor_rejected", userID, reason)
}

func (e *Events) publishVendor(ctx context.Context, eventType string, userID int64, reason string) error {
	return e.producer.Publish(ctx, e.topic, "vendor-"+strconv.FormatInt(userID, 10), kafka.VendorEvent{
		Type:       eventType,
		UserID:     userID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
}

func (e *Events) publish(ctx context.Context, eventType string, b *domain.Booking, reason string) error {
	return e.producer.Publish(ctx, e.topic, strconv.FormatInt(b.ID, 10), kafka.BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		PackageID:     b.PackageID,
		Email:         b.CustomerEmail,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalPrice:    b.TotalPrice.StringFixed(2),
		Reason:        reason,
		OccurredAt:    time.Now().UTC(),
	})
}
