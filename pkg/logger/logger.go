package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL" default:"info"`
	// Sink is a file path; empty means stderr.
	Sink string `envconfig:"LOG_SINK" default:"desk.log"`
}

// NewLogger builds a JSON logger writing to cfg.Sink. The returned func syncs
// the logger and closes the sink file on shutdown.
func NewLogger(cfg Log, name string) (*zap.Logger, func() error, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var (
		sink      zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
		closeSink                     = func() error { return nil }
	)
	if cfg.Sink != "" {
		f, err := os.OpenFile(cfg.Sink, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log sink %q", cfg.Sink)
		}
		sink = zapcore.Lock(f)
		closeSink = f.Close
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.NewAtomicLevelAt(cfg.LogLevel))
	log := zap.New(core, zap.AddCaller()).Named(name)
	return log, func() error {
		_ = log.Sync()
		return closeSink()
	}, nil
}
