package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Astemirdum/library-desk/desk/internal/events"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e events.Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Type != events.LoanCreated || e.EntityID != 42 {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := events.NewPublisher(producer, "library-desk-events")
	require.NoError(t, p.Publish(context.Background(), events.New(events.LoanCreated, 42)))
	require.NoError(t, producer.Close())
}

func TestPublisher_PublishError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := events.NewPublisher(producer, "library-desk-events")
	err := p.Publish(context.Background(), events.New(events.BookDeleted, 10))
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.Contains(t, err.Error(), "publish book.deleted")
	require.NoError(t, producer.Close())
}

func TestNewPublisher_NilProducer(t *testing.T) {
	p := events.NewPublisher(nil, "library-desk-events")
	require.IsType(t, events.Nop{}, p)
	require.NoError(t, p.Publish(context.Background(), events.New(events.BookCreated, 1)))
}
