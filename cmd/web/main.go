// cmd/web/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"stagedir/internal/config"
	"stagedir/internal/db"
	"stagedir/internal/db/migrations"
	"stagedir/internal/routes"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	// Load configuration
	cfg := config.Load()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("Failed to ensure database exists: %v", err)
	}

	// Initialize database
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := migrations.RunMigrations(database.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Create router and setup routes
	router := routes.SetupRoutes(database.DB)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
