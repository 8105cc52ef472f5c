package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"healthshare/internal/config"
	"healthshare/internal/db"
	"healthshare/internal/email"
	"healthshare/internal/jobs"
	"healthshare/internal/metrics"
	"healthshare/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	policy, err := config.LoadPolicy()
	if err != nil {
		log.Fatalf("Failed to load policy file: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Metrics collector reads redemption counters from the database on scrape
	metrics.Init(database)

	// Owner notifications
	notifier := email.NewNotifier(cfg, policy, database)

	srv := server.New(cfg)
	if err := server.RegisterRoutes(ctx, srv, database, policy, notifier); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background retention sweep for long-expired share links
	purger := jobs.NewPurger(database, cfg.PurgeInterval, cfg.PurgeRetention)
	go purger.Start(ctx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
