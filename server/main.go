package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/config"
	"github.com/phamqv/image-bundler/internal/http/handlers"
	"github.com/phamqv/image-bundler/internal/http/routes"
	"github.com/phamqv/image-bundler/internal/services/archive"
	"github.com/phamqv/image-bundler/internal/services/processor"
	"github.com/phamqv/image-bundler/internal/services/queue"
	"github.com/phamqv/image-bundler/internal/services/storage"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	imageProcessor := processor.NewImageProcessor(cfg.Limits.MaxDimension)
	assembler := archive.NewAssembler()
	storageService := storage.NewStorageService(cfg)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	queueService, err := queue.NewQueueService(cfg.RabbitMQ.URL, imageProcessor, assembler, storageService, logger)
	if err != nil {
		logger.Warn("Failed to initialize queue service, async jobs disabled", zap.Error(err))
		queueService = nil
	} else {
		defer queueService.Close()
		for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
			if err := queueService.StartWorker(workerCtx, i); err != nil {
				logger.Error("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
			}
		}
	}

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(imageProcessor, assembler, storageService, queueService, logger, cfg)

	router := routes.NewRouter(imageHandler, logger, cfg.Server.StaticDir)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopWorkers()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
