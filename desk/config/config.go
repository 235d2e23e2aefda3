package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/logger"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type API struct {
	BaseURL string        `envconfig:"LIBRARY_API_URL" default:"http://localhost:5124/api"`
	Timeout time.Duration `envconfig:"LIBRARY_API_TIMEOUT" default:"30s"`
	RPS     float64       `envconfig:"LIBRARY_API_RPS" default:"20"`
	Burst   int           `envconfig:"LIBRARY_API_BURST" default:"5"`
}

type Config struct {
	API            API
	CircuitBreaker circuit_breaker.Config
	Kafka          kafka.Config
	Log            logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment once; options are applied on top.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
	})

	return cfg
}

// Load reads config from environment without caching it.
func Load(ops ...Option) (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	for _, op := range ops {
		op(&config)
	}
	return config, nil
}

type Option func(*Config)

func WithBaseURL(url string) Option {
	return func(c *Config) {
		if url != "" {
			c.API.BaseURL = url
		}
	}
}

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithLogSink(sink string) Option {
	return func(c *Config) {
		c.Log.Sink = sink
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.API.Timeout = timeout
		}
	}
}
