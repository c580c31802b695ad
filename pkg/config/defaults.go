package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Matches the 24h cookie maxAge the product shipped with.
	DefaultSessionTTL    = 24 * time.Hour
	DefaultSessionCookie = "maideasy_session"

	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@maideasy.com"

	DefaultSeedSampleData = true

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCORSAllowedOrigins = "*"

	DefaultKafkaTopic = "maideasy.events"
)
