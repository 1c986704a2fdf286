package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/config"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/handlers"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/logger"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/middleware"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/events"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/queue"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Modcreator API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL)

	var storage services.Storage = services.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := storage.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	queueClient, err := queue.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create queue client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing queue client", "error", err)
		}
	}()

	generationQueue := queue.NewGenerationQueue(queueClient, cfg.QueueName)
	broadcaster := events.NewBroadcaster(queueClient.GetRedisClient(), log)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(storage, log)
	mux.Handle("/health", healthHandler)

	questHandler := handlers.NewQuestHandler(log, storage)
	mux.Handle("/v1/quests", questHandler)
	mux.Handle("/v1/quests/", questHandler)

	npcHandler := handlers.NewNPCHandler(log, storage)
	mux.Handle("/v1/npcs", npcHandler)
	mux.Handle("/v1/npcs/", npcHandler)

	generateHandler := handlers.NewGenerateHandler(log, storage, generationQueue, broadcaster)
	mux.Handle("/v1/generate", generateHandler)
	mux.Handle("/v1/generate/", generateHandler)

	validateHandler := handlers.NewValidateHandler(log)
	mux.Handle("/v1/validate", validateHandler)

	eventsHandler := handlers.NewEventsHandler(queueClient.GetRedisClient(), log)
	mux.Handle("/v1/events/", eventsHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := storage.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
