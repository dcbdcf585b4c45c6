package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/booking-service/pkg/kafka"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type send func(ctx context.Context, msg kafka.PushMessage) error

type Consumer struct {
	sendHandler send
	log         *zap.Logger
}

func NewConsumer(sendHandler send, log *zap.Logger) *Consumer {
	return &Consumer{
		sendHandler: sendHandler,
		log:         log.Named("consumer"),
	}
}

// Setup runs at the start of every consumer-group session; the same handler
// is reused across sessions after a rebalance, so it must stay reentrant.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg kafka.PushMessage
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("unmarshal push message", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// delivery is best-effort: a failed push is logged and the
			// offset is committed, the booking transition already happened
			if err := consumer.sendHandler(session.Context(), msg); err != nil {
				consumer.log.Error("consumer.sendHandler", zap.Error(err))
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
