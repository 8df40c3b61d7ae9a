package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"passenger-service/internal/api"
	"passenger-service/internal/database"
	"passenger-service/internal/queue"
	"passenger-service/pkg/config"
	"passenger-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/server.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	log.SetFormatter(cfg.Logging.Format)
	log.Info("Starting passenger service on %s", cfg.GetServerAddress())

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	services := api.NewServices(db, log, cfg)
	api.SetupRoutes(router, services)

	// Optional reservation notification consumer
	var consumer *queue.Consumer
	if cfg.Queue.Enabled {
		consumer, err = queue.NewConsumer(context.Background(), cfg.Queue, log)
		if err != nil {
			log.Fatal("Failed to create queue consumer: %v", err)
		}
		if err := consumer.Start(); err != nil {
			log.Fatal("Failed to start queue consumer: %v", err)
		}
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	if consumer != nil {
		consumer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
