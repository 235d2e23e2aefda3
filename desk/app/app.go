package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/events"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/book"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/client"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/loan"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/desk/internal/tui"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/logger"
	"github.com/Astemirdum/library-desk/pkg/query"
	"github.com/IBM/sarama"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	log, closeLog, err := logger.NewLogger(cfg.Log, "desk")
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := rest.New(log, cfg.API, circuit_breaker.NewFromConfig(cfg.CircuitBreaker))
	cache := query.New(query.WithLogger(log.Named("query")))

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Warn("kafka producer disabled", zap.Strings("addrs", cfg.Kafka.Addrs), zap.Error(err))
		} else {
			producer = p
		}
	}

	svc := service.New(log, cache,
		book.NewService(log, rc),
		client.NewService(log, rc),
		loan.NewService(log, rc),
		events.NewPublisher(producer, kafka.DeskEventsTopic),
	)

	p := tea.NewProgram(tui.New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	cache.SetListener(func(e query.Event) {
		p.Send(tui.RefreshMsg(e))
	})

	log.Info("desk started", zap.String("api", cfg.API.BaseURL))
	_, err = p.Run()

	log.Debug("Graceful shutdown", zap.Error(err))
	cache.Close()
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	log.Info("Graceful shutdown finished")
	return err
}
