package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	EventsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return &Producer{
		producer: producer,
		topic:    cfg.EventsTopic(),
	}, nil
}

// Publish sends the event keyed by its kind.
func (p *Producer) Publish(ctx context.Context, event transaction.ChangeEvent) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishChangeEvent")
	defer span.Finish()

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal change event")
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Kind),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrap(err, "send change event")
	}
	logger.Debug("change event sent",
		zap.String("kind", event.Kind),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}

// NoopPublisher drops events; used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, transaction.ChangeEvent) error {
	return nil
}
