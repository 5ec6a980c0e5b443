package packing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

var (
	// ErrInputRejected is returned when a raw value cannot be stored. The
	// session is returned unchanged alongside it.
	ErrInputRejected = errors.New("input rejected")
	// ErrBoxTypeNotFound is returned when no box type has the given id.
	ErrBoxTypeNotFound = errors.New("box type not found")
	// ErrUnknownSKU is returned when units are set for a SKU that is not part
	// of the shipment.
	ErrUnknownSKU = errors.New("unknown sku")
	// ErrUnknownField is returned for a dimension name other than length, width or height.
	ErrUnknownField = errors.New("unknown field")
)

// DimensionField names one of the three box dimensions.
type DimensionField string

const (
	DimensionLength DimensionField = "length"
	DimensionWidth  DimensionField = "width"
	DimensionHeight DimensionField = "height"
)

// Adjustment describes a units-per-box value that was lowered so the SKU is
// not assigned beyond the shipment total.
type Adjustment struct {
	BoxTypeID string `json:"boxTypeId"`
	SKU       string `json:"sku"`
	Requested int    `json:"requested"`
	Applied   int    `json:"applied"`
}

// Message is the advisory shown to the operator.
func (a Adjustment) Message() string {
	return fmt.Sprintf("Adjusted units for %s to %d per box to not exceed total shipment quantity.", a.SKU, a.Applied)
}

// parseCount turns raw input into a Count. Blank input clears the field;
// anything that is not an integer in [0, model.MaxCount] is rejected.
func parseCount(raw string) (model.Count, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.EmptyCount(), nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > model.MaxCount {
		return model.Count{}, ErrInputRejected
	}
	return model.CountOf(n), nil
}

// parseMeasure turns raw input into a Measure. Blank input clears the field.
func parseMeasure(raw string) (model.Measure, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.EmptyMeasure(), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Measure{}, ErrInputRejected
	}
	return model.MeasureOf(v), nil
}

// SetBoxCount stores a new box count. Units per box are left as they are even
// when the new count over-assigns a SKU.
func SetBoxCount(s model.PackingSession, boxTypeID, raw string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	count, err := parseCount(raw)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.BoxTypes[idx].BoxCount = count
	return next, nil
}

// SetUnitsPerProduct stores the units of sku per box. When the box type has
// a positive box count and the new value would push the SKU beyond its total
// quantity, the value is lowered to floor(capacity / boxCount) and the
// returned Adjustment describes the change.
func SetUnitsPerProduct(s model.PackingSession, boxTypeID, sku, raw string) (model.PackingSession, *Adjustment, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, nil, ErrBoxTypeNotFound
	}

	item, known := s.Item(sku)
	if _, inBox := s.BoxTypes[idx].UnitsPerProduct[sku]; !known && !inBox {
		return s, nil, ErrUnknownSKU
	}

	units, err := parseCount(raw)
	if err != nil {
		return s, nil, err
	}

	var adj *Adjustment
	boxCount := s.BoxTypes[idx].BoxCount
	if known && boxCount.Positive() && !units.IsEmpty() {
		capacity := item.Quantity - AssignedUnitsExcluding(s, sku, boxTypeID)
		maxPerBox := 0
		if capacity > 0 {
			maxPerBox = capacity / boxCount.Int()
		}
		if units.Int() > maxPerBox {
			adj = &Adjustment{
				BoxTypeID: boxTypeID,
				SKU:       sku,
				Requested: units.Int(),
				Applied:   maxPerBox,
			}
			units = model.CountOf(maxPerBox)
		}
	}

	next := s.Clone()
	next.BoxTypes[idx].UnitsPerProduct[sku] = units
	return next, adj, nil
}

// SetDimension stores one dimension of a box type.
func SetDimension(s model.PackingSession, boxTypeID string, field DimensionField, raw string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	value, err := parseMeasure(raw)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	dims := &next.BoxTypes[idx].Dimensions
	switch field {
	case DimensionLength:
		dims.Length = value
	case DimensionWidth:
		dims.Width = value
	case DimensionHeight:
		dims.Height = value
	default:
		return s, ErrUnknownField
	}
	return next, nil
}

// SetWeight stores the weight of one box.
func SetWeight(s model.PackingSession, boxTypeID, raw string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	value, err := parseMeasure(raw)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.BoxTypes[idx].WeightPerBox = value
	return next, nil
}

// SetDimensionUnit changes the length unit of a box type.
func SetDimensionUnit(s model.PackingSession, boxTypeID, raw string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	unit := model.DimensionUnit(strings.TrimSpace(raw))
	if !unit.Valid() {
		return s, ErrInputRejected
	}

	next := s.Clone()
	next.BoxTypes[idx].Dimensions.Unit = unit
	return next, nil
}

// SetWeightUnit changes the weight unit of a box type.
func SetWeightUnit(s model.PackingSession, boxTypeID, raw string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(boxTypeID)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	unit := model.WeightUnit(strings.TrimSpace(raw))
	if !unit.Valid() {
		return s, ErrInputRejected
	}

	next := s.Clone()
	next.BoxTypes[idx].WeightUnit = unit
	return next, nil
}

// SetPlannedTotalBoxes stores the number of boxes the operator intends to ship.
func SetPlannedTotalBoxes(s model.PackingSession, raw string) (model.PackingSession, error) {
	planned, err := parseCount(raw)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.PlannedTotalBoxes = planned
	return next, nil
}
