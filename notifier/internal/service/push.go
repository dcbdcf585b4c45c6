package service

import (
	"context"
	"time"

	"github.com/Astemirdum/booking-service/pkg/circuit_breaker"
	"github.com/Astemirdum/booking-service/pkg/kafka"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// PushSender delivers a single push message to one device.
type PushSender interface {
	Send(ctx context.Context, msg kafka.PushMessage) error
}

type fcmSender struct {
	client *messaging.Client
	cb     circuit_breaker.CircuitBreaker
	log    *zap.Logger
}

// NewFCMSender builds a Firebase Cloud Messaging sender guarded by a
// circuit breaker, so a misbehaving FCM endpoint sheds load instead of
// stalling the consume loop.
func NewFCMSender(ctx context.Context, credentialsFile string, log *zap.Logger) (PushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	const (
		recordLength     = 20
		timeout          = 30 * time.Second
		percentile       = 0.5
		recoveryRequests = 5
	)
	return &fcmSender{
		client: client,
		cb:     circuit_breaker.New(recordLength, timeout, percentile, recoveryRequests),
		log:    log.Named("fcm"),
	}, nil
}

func (s *fcmSender) Send(ctx context.Context, msg kafka.PushMessage) error {
	return s.cb.Call(func() error {
		resp, err := s.client.Send(ctx, &messaging.Message{
			Token: msg.DeviceToken,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return err
		}
		s.log.Debug("push sent", zap.String("response", resp))
		return nil
	})
}
