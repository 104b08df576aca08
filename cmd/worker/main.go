package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"

	"travelgoals/internal/config"
	"travelgoals/internal/database"
	"travelgoals/internal/email"
	"travelgoals/internal/kafka"
	"travelgoals/internal/modules/booking"
	"travelgoals/internal/repository"
)

// The worker owns two background jobs: the completion sweep that moves
// confirmed bookings past their travel dates to completed, and the
// notification consumer that turns booking events into emails.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	bookingService := booking.NewService(bookingRepo, packageRepo, vendorRepo, nil)

	emailSender := email.NewSender()

	if len(cfg.KafkaBrokers) > 0 {
		consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.EventsTopic)
		defer consumer.Close()

		go func() {
			if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
				var event kafka.BookingEvent
				if err := json.Unmarshal(msg.Value, &event); err != nil {
					log.Printf("decode event error: %v", err)
					return nil
				}
				return emailSender.Send(ctx, event)
			}); err != nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
		log.Printf("consuming events brokers=%v topic=%s group=%s", cfg.KafkaBrokers, cfg.EventsTopic, cfg.KafkaGroupID)
	} else {
		log.Println("KAFKA_BROKERS not set; running completion sweep only")
	}

	sweepTicker := time.NewTicker(cfg.SweepInterval)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("worker started sweep_interval=%s", cfg.SweepInterval)

	for {
		select {
		case <-sweepTicker.C:
			completed, err := bookingService.CompleteElapsed(ctx, time.Now().UTC())
			if err != nil {
				log.Printf("completion sweep error: %v", err)
				continue
			}
			if completed > 0 {
				log.Printf("completion sweep done count=%d", completed)
			}
		case s := <-sig:
			log.Printf("shutting down signal=%s", s)
			cancel()
			return
		}
	}
}
