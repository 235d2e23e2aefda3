package config_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:5124/api", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, 20.0, cfg.API.RPS)
	require.Equal(t, zapcore.InfoLevel, cfg.Log.LogLevel)
	require.Equal(t, "desk.log", cfg.Log.Sink)
	require.Equal(t, 50, cfg.CircuitBreaker.RecordLength)
	require.False(t, cfg.Kafka.Enabled())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LIBRARY_API_URL", "http://library.internal/api")
	t.Setenv("LIBRARY_API_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "http://library.internal/api", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.True(t, cfg.Kafka.Enabled())
}

func TestLoad_OptionsOverrideEnv(t *testing.T) {
	t.Setenv("LIBRARY_API_URL", "http://library.internal/api")

	cfg, err := config.Load(
		config.WithBaseURL("http://127.0.0.1:8080/api"),
		config.WithLogLevel(zapcore.WarnLevel),
		config.WithLogSink(""),
		config.WithTimeout(0),
	)
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:8080/api", cfg.API.BaseURL)
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Empty(t, cfg.Log.Sink)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("LIBRARY_API_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
}
