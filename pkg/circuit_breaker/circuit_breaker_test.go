package circuit_breaker_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/booking-service/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	t.Run("stays closed on success", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 2*time.Second, 0.3, 3)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("opens after the failure percentile", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.3, 3)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB,
			"open breaker fails fast without calling the service")
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.3, 3)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		cb.Reset()
		require.NoError(t, cb.Call(successfulService))
	})
}
