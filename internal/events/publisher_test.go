package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func packedRecord() *model.ShipmentRecord {
	return &model.ShipmentRecord{
		ID:         "abc123",
		ShipmentID: "SHP-1",
		Status:     model.ShipmentStatusPacked,
		PackingLines: []model.PackingLine{
			{BoxCount: 3, UnitsPerBox: []model.UnitsPerBox{{SKU: "WH-001", Quantity: 10}}},
			{BoxCount: 2},
		},
	}
}

func TestNewShipmentPackedEvent(t *testing.T) {
	event := NewShipmentPackedEvent(packedRecord())

	assert.Equal(t, "1.0", event.SpecVersion)
	assert.Equal(t, TypeShipmentPacked, event.Type)
	assert.Equal(t, Source, event.Source)
	assert.Equal(t, "abc123", event.Subject)
	assert.NotEmpty(t, event.ID)

	data, ok := event.Data.(ShipmentPackedData)
	require.True(t, ok)
	assert.Equal(t, 5, data.TotalBoxes)
	assert.Equal(t, "SHP-1", data.ShipmentID)
}

func TestKafkaPublisher_PublishShipmentPacked(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer, topic: "packing.events"}

	require.NoError(t, publisher.PublishShipmentPacked(context.Background(), packedRecord()))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, []byte("abc123"), msg.Key)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, TypeShipmentPacked, headers["ce-type"])
	assert.Equal(t, "application/json", headers["content-type"])

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, TypeShipmentPacked, decoded["type"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := &KafkaPublisher{writer: writer, topic: "packing.events"}

	err := publisher.PublishShipmentPacked(context.Background(), packedRecord())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "packing.events")
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestNewKafkaPublisher(t *testing.T) {
	publisher := NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "packing.events"})

	assert.Equal(t, "packing.events", publisher.topic)
	assert.NotNil(t, publisher.writer)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.PublishShipmentPacked(context.Background(), packedRecord()))
	assert.NoError(t, p.Close())
}
