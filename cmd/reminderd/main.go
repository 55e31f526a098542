package main

import (
	"os"
	"os/signal"
	"syscall"

	"card_notification_service/internal/app"
	"card_notification_service/internal/infra/config"
	idb "card_notification_service/internal/infra/database"
	"card_notification_service/internal/infra/logger"
	"card_notification_service/internal/infra/push"
	"card_notification_service/internal/infra/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Timezone: %s", cfg.LogLevel, cfg.Environment, cfg.Timezone)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Repositories
	userRepo := idb.NewPostgresUserRepository(db)
	cardRepo := idb.NewPostgresCardRepository(db)
	paymentRepo := idb.NewPostgresPaymentRepository(db)
	deviceRepo := idb.NewPostgresDeviceRepository(db)
	notificationRepo := idb.NewPostgresNotificationRepository(db)
	log.Info("Repositories initialized.")

	// Initialize Push Gateway client
	gateway := push.NewHTTPGateway(cfg.PushGatewayURL, cfg.PushGatewayAPIKey)
	log.Info("Push gateway client initialized.")

	// Initialize ReminderService
	reminderService := app.NewReminderService(
		userRepo,
		cardRepo,
		paymentRepo,
		deviceRepo,
		notificationRepo,
		gateway,
		log,
		cfg.Location(),
		cfg.UserWorkers,
	)
	log.Info("Reminder service initialized.")

	// Initialize and start the scheduler
	reminderScheduler := scheduler.NewReminderScheduler(
		reminderService,
		log,
		cfg.CronSpecTick,
		cfg.RunTimeout,
		cfg.Location(),
	)
	reminderScheduler.Start()

	log.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	reminderScheduler.Stop()
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
