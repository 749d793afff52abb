package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elearning/backend/config"
	"elearning/backend/routes"
	"elearning/backend/seed"
	"elearning/backend/store"
	"elearning/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogColors,
	})

	// Initialize store
	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}
	defer closeStore()

	if err := seed.Run(context.Background(), st, seed.LoaderFor(cfg.SeedFile)); err != nil {
		log.Fatalf("Error seeding store: %v", err)
	}

	app := routes.NewApp(st, cfg, logger)

	// Start server non-blocking
	go func() {
		logger.Printf("Listening on :%s (store=%s)", cfg.ServerPort, cfg.StoreDriver)
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}

func openStore(cfg *config.Config, logger *log.Logger) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		gs, err := store.OpenSQLite(cfg.SQLiteDSN, store.NewSequence(), logger)
		if err != nil {
			return nil, nil, err
		}
		return gs, func() { _ = gs.Close() }, nil
	default:
		return store.NewMemoryStore(store.NewSequence()), func() {}, nil
	}
}
