package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelgoals/internal/cache"
	"travelgoals/internal/config"
	"travelgoals/internal/database"
	"travelgoals/internal/kafka"
	"travelgoals/internal/middleware"
	"travelgoals/internal/modules/admin"
	"travelgoals/internal/modules/approval"
	"travelgoals/internal/modules/assistant"
	"travelgoals/internal/modules/auth"
	"travelgoals/internal/modules/booking"
	"travelgoals/internal/modules/catalog"
	"travelgoals/internal/modules/payment"
	"travelgoals/internal/modules/review"
	"travelgoals/internal/modules/vendor"
	"travelgoals/internal/notification"
	jwtsvc "travelgoals/internal/pkg/jwt"
	"travelgoals/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	pendingRepo := repository.NewPendingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var catalogCache *cache.RedisCache
	if cfg.RedisAddr != "" {
		catalogCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CatalogCacheTTL)
		log.Printf("catalog cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.CatalogCacheTTL)
	}

	var events *notification.Events
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
		events = notification.NewEvents(producer, cfg.EventsTopic)
		log.Printf("event publishing enabled brokers=%v topic=%s", cfg.KafkaBrokers, cfg.EventsTopic)
	}
	// keep interface values truly nil when kafka is not configured
	var bookingNotifs booking.NotificationSender
	var paymentNotifs payment.NotificationSender
	var adminNotifs admin.NotificationSender
	if events != nil {
		bookingNotifs = events
		paymentNotifs = events
		adminNotifs = events
	}

	groqClient := assistant.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)
	if !groqClient.Enabled() {
		log.Println("GROQ_API_KEY not set; assistant runs in degraded mode")
	}

	authService := auth.NewService(userRepo, vendorRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(destinationRepo, packageRepo, vendorRepo, catalogCache)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, packageRepo, vendorRepo, bookingNotifs)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(bookingRepo, paymentNotifs)
	paymentHandler := payment.NewHandler(paymentService)

	approvalService := approval.NewService(db, catalogCache)

	vendorService := vendor.NewService(vendorRepo, pendingRepo, packageRepo, destinationRepo, catalogCache)
	vendorHandler := vendor.NewHandler(vendorService)

	adminService := admin.NewService(userRepo, vendorRepo, bookingRepo, pendingRepo, adminNotifs)
	adminHandler := admin.NewHandler(adminService, approvalService)

	assistantService := assistant.NewService(groqClient, catalogService)
	assistantHub := assistant.NewHub(assistantService)
	assistantHandler := assistant.NewHandler(assistantService, assistantHub)

	reviewService := review.NewService(reviewRepo, packageRepo, assistantService)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		assistantHandler.RegisterPublicRoutes(v1)

		// guest-friendly: identity attached when a token is sent
		optional := v1.Group("/")
		optional.Use(middleware.OptionalAuth(j))
		{
			reviewHandler.RegisterPublicRoutes(optional)
		}

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}

		// vendor console
		vendorGroup := v1.Group("/")
		vendorGroup.Use(middleware.Auth(j), middleware.VendorOnly())
		{
			vendorHandler.RegisterRoutes(vendorGroup)
			bookingHandler.RegisterVendorRoutes(vendorGroup)
			assistantHandler.RegisterVendorRoutes(vendorGroup)
		}

		// admin console
		adminGroup := v1.Group("/")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Printf("listening addr=%s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
