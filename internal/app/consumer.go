package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-siteops/internal/events"
	"go-siteops/internal/messaging/kafka/consumer"
	"go-siteops/internal/notification"
	"go-siteops/internal/shared/connection"
	"go-siteops/internal/wagerate"
)

// RunConsumer subscribes to the wage rate change and labor record creation
// topics. Rate changes drop the wage cache; record creations fan out into
// employee notifications.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	wageRateRepo := wagerate.NewRepository(gormDB)
	wageProvider := wagerate.NewProvider(wageRateRepo, redisClient)

	notificationRepo := notification.NewRepository(gormDB)
	notificationService := notification.NewService(notificationRepo)

	wageRateReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.WageRateChangedTopic,
		GroupID:        "go-siteops-wagerate-cache",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer wageRateReader.Close()

	laborRecordReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.LaborRecordCreatedTopic,
		GroupID:        "go-siteops-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer laborRecordReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeWageRateChanges(ctx, wageRateReader, wageProvider, logger)
	go consumer.ConsumeLaborRecordCreated(ctx, laborRecordReader, notificationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
