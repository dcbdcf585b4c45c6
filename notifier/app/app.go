package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astemirdum/booking-service/notifier/config"
	"github.com/Astemirdum/booking-service/notifier/internal/handler"
	"github.com/Astemirdum/booking-service/notifier/internal/service"
	"github.com/Astemirdum/booking-service/pkg/kafka"
	"github.com/Astemirdum/booking-service/pkg/logger"

	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "notifier")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, err := service.NewFCMSender(ctx, cfg.Firebase.CredentialsFile, log)
	if err != nil {
		return fmt.Errorf("fcm sender init %w", err)
	}

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}
	go kafka.Consume(ctx, consumer, handler.NewConsumer(sender.Send, log), log, kafka.NotificationsTopic)
	log.Info("notifier consuming", zap.String("topic", kafka.NotificationsTopic))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
