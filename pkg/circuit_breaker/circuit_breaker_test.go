package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

var errService = errors.New("service error")

func successfulService() error { return nil }

func failingService() error { return errService }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	// 3 of the last 10 failed: the breaker opens on the third failure
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(failingService), errService)
	}
	require.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.False(t, called)

	time.Sleep(80 * time.Millisecond)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(2, 20*time.Millisecond, 0.5, 3)

	require.Error(t, cb.Call(failingService))
	require.Equal(t, circuit_breaker.Open, cb.State())

	time.Sleep(40 * time.Millisecond)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(successfulService))
}
