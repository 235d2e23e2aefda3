package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Type string

const (
	BookCreated   Type = "book.created"
	BookDeleted   Type = "book.deleted"
	ClientCreated Type = "client.created"
	LoanCreated   Type = "loan.created"
)

type Event struct {
	ID       uuid.UUID `json:"id"`
	Type     Type      `json:"type"`
	EntityID int       `json:"entityId"`
	At       time.Time `json:"at"`
}

func New(typ Type, entityID int) Event {
	return Event{
		ID:       uuid.New(),
		Type:     typ,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

func NewPublisher(producer sarama.SyncProducer, topic string) Publisher {
	if producer == nil {
		return Nop{}
	}
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func (p *kafkaPublisher) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(e.EntityID)),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return errors.Wrapf(err, "publish %s", e.Type)
	}
	return nil
}

// Nop drops every event; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
