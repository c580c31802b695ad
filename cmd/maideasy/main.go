package main

import (
	"context"

	"maideasy/internal/auth"
	authhandler "maideasy/internal/auth/handler"
	authrepo "maideasy/internal/auth/repository"
	authservice "maideasy/internal/auth/service"
	authvalidator "maideasy/internal/auth/validator"
	bookinghandler "maideasy/internal/bookings/handler"
	bookingrepo "maideasy/internal/bookings/repository"
	bookingservice "maideasy/internal/bookings/service"
	bookingvalidator "maideasy/internal/bookings/validator"
	companyhandler "maideasy/internal/company/handler"
	companyrepo "maideasy/internal/company/repository"
	companyservice "maideasy/internal/company/service"
	companyvalidator "maideasy/internal/company/validator"
	maidhandler "maideasy/internal/maids/handler"
	maidrepo "maideasy/internal/maids/repository"
	maidservice "maideasy/internal/maids/service"
	maidvalidator "maideasy/internal/maids/validator"
	"maideasy/internal/seed"
	waitlisthandler "maideasy/internal/waitlist/handler"
	waitlistrepo "maideasy/internal/waitlist/repository"
	waitlistservice "maideasy/internal/waitlist/service"
	waitlistvalidator "maideasy/internal/waitlist/validator"
	"maideasy/pkg/app"
	"maideasy/pkg/config"
	"maideasy/pkg/contracts"
	"maideasy/pkg/events"
)

const ServiceName = "maideasy"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting MaidEasy service")

	publisher := initPublisher(cfg)
	sessions := auth.NewSessionStore(cfg.SessionTTL)
	authMiddleware := auth.NewMiddleware(sessions, cfg.SessionCookie)

	userRepo := authrepo.NewUserRepository()
	waitlistRepo := waitlistrepo.NewWaitlistRepository()
	maidRepo := maidrepo.NewMaidRepository()
	bookingRepo := bookingrepo.NewBookingRepository()
	settingsRepo := companyrepo.NewCompanySettingsRepository()

	authSvc := authservice.NewAuthService(userRepo, sessions, authvalidator.NewAuthValidator(), publisher, cfg.Log)
	waitlistSvc := waitlistservice.NewWaitlistService(waitlistRepo, waitlistvalidator.NewWaitlistValidator(), publisher, cfg.Log)
	maidSvc := maidservice.NewMaidService(maidRepo, maidvalidator.NewMaidValidator(), publisher, cfg.Log)
	bookingSvc := bookingservice.NewBookingService(bookingRepo, maidRepo, bookingvalidator.NewBookingValidator(), publisher, cfg.Log)
	settingsSvc := companyservice.NewCompanySettingsService(settingsRepo, companyvalidator.NewCompanySettingsValidator(), cfg.Log)

	seeder := seed.New(authSvc, maidRepo, settingsRepo, cfg, cfg.Log)
	if err := seeder.Run(context.Background()); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}

	handlers := []contracts.Handler{
		authhandler.NewAuthHandler(authSvc, authMiddleware, cfg.SessionCookie, cfg.Log),
		waitlisthandler.NewWaitlistHandler(waitlistSvc, cfg.Log),
		maidhandler.NewMaidHandler(maidSvc, authMiddleware, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, authMiddleware, cfg.Log),
		companyhandler.NewCompanySettingsHandler(settingsSvc, authMiddleware, cfg.Log),
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers,
		sessions.Stop,
		func() {
			if err := publisher.Close(); err != nil {
				cfg.Log.Error("Failed to close event publisher", "error", err)
			}
		},
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, events disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}

	cfg.Log.Info("Kafka publisher initialized", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return publisher
}
