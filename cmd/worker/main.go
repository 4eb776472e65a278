package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"forcefocus/api/internal/cache"
	"forcefocus/api/internal/config"
	"forcefocus/api/internal/database"
	"forcefocus/api/internal/log"
	"forcefocus/api/internal/queue"
	"forcefocus/api/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, "worker")

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect mongo")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("mongo disconnect error")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer redisClient.Close()

	// BUSYGROUP just means another worker created the group first.
	err = redisClient.XGroupCreateMkStream(ctx, cfg.Redis.JobStream, cfg.Worker.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		logger.Fatal().Err(err).Msg("consumer group create failed")
	}

	processor := queue.NewProcessor(
		repository.NewJobLogRepository(db),
		repository.NewNotificationLogRepository(db),
		cfg.Retention.NotificationLogs,
		logger,
	)
	consumer := queue.NewConsumer(redisClient, cfg.Redis.JobStream, cfg.Worker, logger, processor)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := consumer.Start(runCtx); err != nil && err != context.Canceled {
			logger.Fatal().Err(err).Msg("consumer stopped unexpectedly")
		}
	}()

	<-runCtx.Done()
	logger.Info().Msg("shutdown signal received")
	time.Sleep(500 * time.Millisecond)
}
