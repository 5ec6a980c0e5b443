package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/segmentio/kafka-go"
)

// Publisher announces packing outcomes to other systems.
type Publisher interface {
	PublishShipmentPacked(ctx context.Context, record *model.ShipmentRecord) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig configures the Kafka publisher.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	RequiredAcks int
}

// KafkaPublisher writes CloudEvents to a Kafka topic.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a publisher writing to cfg.Topic.
func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: batchTimeout,
			RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		},
		topic: cfg.Topic,
	}
}

// PublishShipmentPacked publishes a shipment.packed event keyed by shipment.
func (p *KafkaPublisher) PublishShipmentPacked(ctx context.Context, record *model.ShipmentRecord) error {
	event := NewShipmentPackedEvent(record)
	err := p.publish(ctx, event)

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordEvent(event.Type, result)
	return err
}

func (p *KafkaPublisher) publish(ctx context.Context, event *CloudEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Subject),
		Value: data,
		Headers: []kafka.Header{
			{Key: "ce-specversion", Value: []byte(event.SpecVersion)},
			{Key: "ce-type", Value: []byte(event.Type)},
			{Key: "ce-source", Value: []byte(event.Source)},
			{Key: "ce-id", Value: []byte(event.ID)},
			{Key: "ce-time", Value: []byte(event.Time.Format(time.RFC3339))},
			{Key: "content-type", Value: []byte(event.DataContentType)},
		},
		Time: event.Time,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when no brokers are configured.
type NoopPublisher struct{}

// PublishShipmentPacked does nothing.
func (NoopPublisher) PublishShipmentPacked(context.Context, *model.ShipmentRecord) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
