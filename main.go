package main

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/notifier"
	"jobboard/internal/repository"
	"jobboard/internal/server"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/token"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Token authority signs and validates all access and refresh tokens
	authority, err := token.NewAuthority(cfg.JWT.Secret,
		cfg.JWT.AccessTokenValiditySeconds, cfg.JWT.RefreshTokenValiditySecs)
	if err != nil {
		logger.Fatal("Failed to initialize token authority", zap.Error(err))
	}

	// Local file storage for resumes and company logos
	fileStorage, err := storage.NewFileStorage(cfg.Upload.BaseDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Telegram notifications for new jobs and resumes (optional)
	tgNotifier, err := notifier.NewTelegramNotifier(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
		tgNotifier = nil
	}
	var jobNotifier service.Notifier
	if tgNotifier != nil {
		jobNotifier = tgNotifier
	}

	// Initialize and run the server
	srv := server.NewServer(db, authority, fileStorage, jobNotifier, log, logger)
	srv.Run(cfg.Server.Port)
}
