// main.go
package main

import (
	"context"
	"log"

	"dorm-rental/cmd"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/scheduler"
	"dorm-rental/internal/wire"
	"dorm-rental/pkg/cache"
	"dorm-rental/pkg/database"
	"dorm-rental/pkg/storage"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
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

	if config.Database.AutoMigrate {
		if err := database.Migrate(config.Database, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	dashboardCache, closeCache, err := cache.New(config.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer closeCache()

	store, err := storage.NewLocalStore(config.Upload.Dir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, dashboardCache, store, logger)

	jobs, err := scheduler.New(repos, app.Limiter, logger)
	if err != nil {
		logger.Fatal("Failed to create scheduler", zap.Error(err))
	}
	jobs.Start()

	if err := cmd.APIServer(app.Router, config.App.Port, logger, func(ctx context.Context) {
		jobs.Stop(ctx)
	}); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
