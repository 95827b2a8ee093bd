package main

import (
	"context"
	"log"
	"time"

	"facility-booking/cmd"
	"facility-booking/internal/app"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/notify"
	"facility-booking/internal/wire"
	"facility-booking/pkg/database"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	ctx := context.Background()

	// Apply migrations
	migrator, err := app.NewMigrator(db.Pool(), config.App.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to init migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Resolve what the schema supports, once
	caps, err := repos.Schema.LoadCapabilities(ctx)
	if err != nil {
		logger.Fatal("Failed to load schema capabilities", zap.Error(err))
	}

	// Mail notifications. Without a configured admin list, fall back to
	// the admin roster in the database.
	if len(config.Notify.AdminEmails) == 0 {
		admins, err := repos.User.AdminEmails(ctx)
		if err != nil {
			logger.Warn("Failed to load admin emails, owner-only notifications", zap.Error(err))
		}
		config.Notify.AdminEmails = admins
	}

	mailer, err := notify.NewSMTPMailer(config.Email)
	if err != nil {
		logger.Fatal("Failed to init mailer", zap.Error(err))
	}
	if mailer == nil {
		logger.Info("SMTP not configured, email notifications disabled")
	}
	notifier := notify.NewDispatcher(mailer, config.Notify, logger)

	// Wire all dependencies
	application := wire.Wiring(repos, caps, notifier, config, logger)

	// Background sweep of finished reservations
	sweeper := app.NewSweeper(repos.Studio, repos.MeetingRoom,
		time.Duration(config.Sweeper.IntervalMinutes)*time.Minute, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(application.Router, config.App.Port)
}
