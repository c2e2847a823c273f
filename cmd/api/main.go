package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"messages-api/internal/config"
	"messages-api/internal/events"
	apihttp "messages-api/internal/http"
	"messages-api/internal/service"
	"messages-api/internal/storage"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	messageRepo, closeRepo, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("storage init", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeRepo()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub, err := events.NewKafkaPublisher(logger, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logger.Warn("kafka publisher init failed", zap.Error(err))
		} else {
			publisher = kafkaPub
			defer kafkaPub.Close()
		}
	}

	msgSvc := service.NewMessageService(messageRepo, publisher, logger)
	msgHandler := apihttp.NewMessageHandler(logger, msgSvc)
	router := apihttp.NewRouter(logger, cfg.HTTPBasePath, msgHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("base_path", cfg.HTTPBasePath),
		zap.String("storage_backend", cfg.StorageBackend),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
