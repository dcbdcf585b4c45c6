package handler_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/booking-service/notifier/internal/handler"
	"github.com/Astemirdum/booking-service/pkg/kafka"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// A rebalance or broker error ends the session and the consume loop starts
// a new one with the same handler, so Setup/Cleanup run once per session.
func TestConsumer_SurvivesSessionRestart(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(
		func(_ context.Context, _ kafka.PushMessage) error { return nil },
		zap.NewExample().Named("test"),
	)

	for i := 0; i < 3; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, consumer.Setup(nil))
			require.NoError(t, consumer.Cleanup(nil))
		})
	}
}
