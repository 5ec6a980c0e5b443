package model

import "time"

// ShipmentStatus is the lifecycle status of a shipment in the remote store.
type ShipmentStatus string

const (
	ShipmentStatusDraft      ShipmentStatus = "Draft"
	ShipmentStatusInProgress ShipmentStatus = "In Progress"
	ShipmentStatusPacked     ShipmentStatus = "Packed"
	ShipmentStatusShipped    ShipmentStatus = "Shipped"
	ShipmentStatusDelivered  ShipmentStatus = "Delivered"
	ShipmentStatusCancelled  ShipmentStatus = "Cancelled"
)

// LineDimensions is the wire form of a box's dimensions.
type LineDimensions struct {
	Length float64 `json:"length" example:"20"`
	Width  float64 `json:"width" example:"15"`
	Height float64 `json:"height" example:"10"`
	Unit   string  `json:"unit" example:"in"`
}

// UnitsPerBox is the number of units of one SKU packed into one box.
type UnitsPerBox struct {
	SKU      string `json:"sku" example:"WH-001"`
	Quantity int    `json:"quantity" example:"25"`
}

// PackingLine is the persisted form of one box type.
//
// @Description Persisted packing line (one per box type)
type PackingLine struct {
	// ID is assigned by the remote store and never sent on update.
	ID          string         `json:"_id,omitempty"`
	BoxCount    int            `json:"boxCount" example:"4"`
	Dimensions  LineDimensions `json:"dimensions"`
	Weight      float64        `json:"weight" example:"12.5"`
	WeightUnit  string         `json:"weightUnit" example:"lb"`
	UnitsPerBox []UnitsPerBox  `json:"unitsPerBox"`
} // @name PackingLine

// ShipmentContent is one product line as stored by the remote shipments API.
type ShipmentContent struct {
	ID       string `json:"_id,omitempty"`
	SKU      string `json:"sku"`
	ASIN     string `json:"asin"`
	Quantity int    `json:"quantity"`
}

// ShippingLabel is an uploaded carrier label attached to packing lines.
type ShippingLabel struct {
	ID         string    `json:"_id,omitempty"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	AppliesTo  []string  `json:"appliesTo"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ShipmentRecord is the shipment as returned by the remote shipments API.
// After a save it is the authoritative state of the shipment.
//
// @Description Shipment record owned by the remote shipments API
type ShipmentRecord struct {
	ID               string            `json:"_id" example:"64f1c2d3e4b5a6978a1b2c3d"`
	ShipmentID       string            `json:"shipmentId" example:"SHP-2024-0042"`
	ShipmentName     string            `json:"shipmentName" example:"FBA restock March"`
	ShipmentContents []ShipmentContent `json:"shipmentContents,omitempty"`
	PackingLines     []PackingLine     `json:"packingLines,omitempty"`
	Status           ShipmentStatus    `json:"status" example:"Packed"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	IsPriority       bool              `json:"isPriority,omitempty"`
	PriorityIndex    int               `json:"priorityIndex,omitempty"`
	ShippingLabels   []ShippingLabel   `json:"shippingLabels,omitempty"`
} // @name ShipmentRecord

// Identifier returns the identifier used to address the shipment in the
// remote API: the store id when present, else the human-readable shipment id.
func (r ShipmentRecord) Identifier() string {
	if r.ID != "" {
		return r.ID
	}
	return r.ShipmentID
}
