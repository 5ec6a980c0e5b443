// Package events publishes packing domain events as CloudEvents on Kafka.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pack-planner/internal/domain/model"
)

const (
	// TypeShipmentPacked is emitted after a packing plan was saved.
	TypeShipmentPacked = "packplanner.shipment.packed"
	// Source identifies this service as the event producer.
	Source = "/pack-planner"

	specVersion     = "1.0"
	jsonContentType = "application/json"
)

// CloudEvent is a CloudEvents v1.0 envelope.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	Type            string      `json:"type"`
	Source          string      `json:"source"`
	Subject         string      `json:"subject,omitempty"`
	ID              string      `json:"id"`
	Time            time.Time   `json:"time"`
	DataContentType string      `json:"datacontenttype"`
	Data            interface{} `json:"data"`
}

// ShipmentPackedData is the payload of a shipment.packed event.
type ShipmentPackedData struct {
	ID           string               `json:"id"`
	ShipmentID   string               `json:"shipmentId"`
	ShipmentName string               `json:"shipmentName,omitempty"`
	Status       model.ShipmentStatus `json:"status"`
	TotalBoxes   int                  `json:"totalBoxes"`
	PackingLines []model.PackingLine  `json:"packingLines"`
}

// NewShipmentPackedEvent builds the event for a saved shipment record.
func NewShipmentPackedEvent(record *model.ShipmentRecord) *CloudEvent {
	total := 0
	for _, line := range record.PackingLines {
		total += line.BoxCount
	}

	return &CloudEvent{
		SpecVersion:     specVersion,
		Type:            TypeShipmentPacked,
		Source:          Source,
		Subject:         record.Identifier(),
		ID:              uuid.NewString(),
		Time:            time.Now().UTC(),
		DataContentType: jsonContentType,
		Data: ShipmentPackedData{
			ID:           record.ID,
			ShipmentID:   record.ShipmentID,
			ShipmentName: record.ShipmentName,
			Status:       record.Status,
			TotalBoxes:   total,
			PackingLines: record.PackingLines,
		},
	}
}
