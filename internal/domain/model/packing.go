// Package model defines the core domain entities for the packing planner.
package model

// DimensionUnit is the length unit of a box's dimensions.
type DimensionUnit string

const (
	DimensionUnitCentimeter DimensionUnit = "cm"
	DimensionUnitInch       DimensionUnit = "in"
)

// Valid reports whether u is a supported dimension unit.
func (u DimensionUnit) Valid() bool {
	return u == DimensionUnitCentimeter || u == DimensionUnitInch
}

// WeightUnit is the unit of a box's weight.
type WeightUnit string

const (
	WeightUnitGram     WeightUnit = "g"
	WeightUnitKilogram WeightUnit = "kg"
	WeightUnitPound    WeightUnit = "lb"
	WeightUnitOunce    WeightUnit = "oz"
)

// Valid reports whether u is a supported weight unit.
func (u WeightUnit) Valid() bool {
	switch u {
	case WeightUnitGram, WeightUnitKilogram, WeightUnitPound, WeightUnitOunce:
		return true
	}
	return false
}

const (
	// DefaultDimensionUnit is used for new box types and for lines saved without a unit.
	DefaultDimensionUnit = DimensionUnitInch
	// DefaultWeightUnit is used for new box types and for lines saved without a unit.
	DefaultWeightUnit = WeightUnitPound
)

// ShipmentLineItem is one product line of the shipment being packed.
//
// @Description Product line of a shipment
type ShipmentLineItem struct {
	SKU  string `json:"sku" binding:"required" example:"WH-001"`
	Name string `json:"name" example:"Wireless headphones"`
	ASIN string `json:"asin" example:"B08N5WRWNW"`
	// Quantity is the authoritative number of units that must end up packed.
	Quantity int `json:"quantity" binding:"gte=0" example:"100"`
} // @name ShipmentLineItem

// Dimensions holds the physical size of one box.
type Dimensions struct {
	Length Measure       `json:"length" swaggertype:"number"`
	Width  Measure       `json:"width" swaggertype:"number"`
	Height Measure       `json:"height" swaggertype:"number"`
	Unit   DimensionUnit `json:"unit" example:"in"`
}

// BoxType is one kind of box used in the shipment.
//
// @Description User-defined box type with per-SKU units per box
type BoxType struct {
	ID              string           `json:"id" example:"5f0c6a3e-0d1f-4a55-9a0d-2f9c1f3b7e11"`
	BoxCount        Count            `json:"boxCount" swaggertype:"integer"`
	Dimensions      Dimensions       `json:"dimensions"`
	WeightPerBox    Measure          `json:"weightPerBox" swaggertype:"number"`
	WeightUnit      WeightUnit       `json:"weightUnit" example:"lb"`
	UnitsPerProduct map[string]Count `json:"unitsPerProduct" swaggertype:"object"`
	Expanded        bool             `json:"isExpanded"`
} // @name BoxType

// Clone returns a deep copy of the box type.
func (b BoxType) Clone() BoxType {
	units := make(map[string]Count, len(b.UnitsPerProduct))
	for sku, n := range b.UnitsPerProduct {
		units[sku] = n
	}
	b.UnitsPerProduct = units
	return b
}

// PackingSession is the editable packing plan for one shipment.
// Items are reference data and are never modified by edits.
//
// @Description Packing plan being edited
type PackingSession struct {
	ShipmentID        string             `json:"shipmentId" example:"64f1c2d3e4b5a6978a1b2c3d"`
	PlannedTotalBoxes Count              `json:"plannedTotalBoxes" swaggertype:"integer"`
	BoxTypes          []BoxType          `json:"boxTypes"`
	Items             []ShipmentLineItem `json:"items"`
} // @name PackingSession

// Clone returns a deep copy of the session.
func (s PackingSession) Clone() PackingSession {
	boxTypes := make([]BoxType, len(s.BoxTypes))
	for i, bt := range s.BoxTypes {
		boxTypes[i] = bt.Clone()
	}
	s.BoxTypes = boxTypes

	items := make([]ShipmentLineItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// Item returns the line item for sku.
func (s PackingSession) Item(sku string) (ShipmentLineItem, bool) {
	for _, item := range s.Items {
		if item.SKU == sku {
			return item, true
		}
	}
	return ShipmentLineItem{}, false
}

// BoxTypeIndex returns the position of the box type with id, or -1.
func (s PackingSession) BoxTypeIndex(id string) int {
	for i, bt := range s.BoxTypes {
		if bt.ID == id {
			return i
		}
	}
	return -1
}
