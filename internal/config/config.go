package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultJWTTTL          = "24h"
	defaultGroqBaseURL     = "https://api.groq.com/openai/v1"
	defaultGroqModel       = "llama-3.3-70b-versatile"
	defaultCatalogCacheTTL = "60s"
	defaultEventsTopic     = "booking-events"
	defaultKafkaGroupID    = "travelgoals-worker"
	defaultSweepInterval   = "10m"
)

// Config is the process-wide runtime configuration, read from the
// environment (godotenv loads .env in the mains).
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	KafkaBrokers []string
	EventsTopic  string
	KafkaGroupID string

	SweepInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      envOrDefault("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:   envOrDefault("GROQ_BASE_URL", defaultGroqBaseURL),
		GroqModel:     envOrDefault("GROQ_MODEL", defaultGroqModel),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		EventsTopic:   envOrDefault("KAFKA_EVENTS_TOPIC", defaultEventsTopic),
		KafkaGroupID:  envOrDefault("KAFKA_GROUP_ID", defaultKafkaGroupID),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	var err error
	if cfg.JWTTTL, err = parseDuration("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.CatalogCacheTTL, err = parseDuration("CATALOG_CACHE_TTL", defaultCatalogCacheTTL); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = parseDuration("SWEEP_INTERVAL", defaultSweepInterval); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDuration(name, def string) (time.Duration, error) {
	raw := envOrDefault(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
