package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"messages-api/internal/domain"
)

// Publisher notifica a terceros que un mensaje fue creado.
type Publisher interface {
	PublishCreated(ctx context.Context, msg domain.Message) error
}

// NopPublisher descarta los eventos; es el valor por defecto sin Kafka configurado.
type NopPublisher struct{}

func (NopPublisher) PublishCreated(context.Context, domain.Message) error { return nil }

type kafkaProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// KafkaPublisher escribe un registro JSON por mensaje creado, con el id como clave.
type KafkaPublisher struct {
	logger *zap.Logger
	client kafkaProducer
	topic  string
}

func NewKafkaPublisher(logger *zap.Logger, seedBrokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(seedBrokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{logger: logger, client: client, topic: topic}, nil
}

func (p *KafkaPublisher) PublishCreated(ctx context.Context, msg domain.Message) error {
	const op = "KafkaPublisher.PublishCreated"

	rec, err := p.record(msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.logger.Debug("message event produced",
		zap.String("topic", p.topic),
		zap.String("message_id", msg.IDString()),
	)
	return nil
}

func (p *KafkaPublisher) Close() {
	p.logger.Info("closing kafka publisher")
	p.client.Close()
}

func (p *KafkaPublisher) record(msg domain.Message) (*kgo.Record, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &kgo.Record{
		Topic: p.topic,
		Key:   []byte(msg.IDString()),
		Value: value,
	}, nil
}
