// Package packing implements the packing allocation editor: constructors for
// a PackingSession, allocation arithmetic, save validation and the pure edit
// reducers applied by the interactive layer.
//
// Every function takes a session by value and returns a new one; the input is
// never modified.
package packing

import (
	"github.com/google/uuid"
	"github.com/guttosm/pack-planner/internal/domain/model"
)

// newID generates session-local box type identifiers.
var newID = uuid.NewString

// NewBoxType returns a box type with default values: one box, empty
// dimensions and weight, and zero units for every known SKU.
func NewBoxType(items []model.ShipmentLineItem) model.BoxType {
	units := make(map[string]model.Count, len(items))
	for _, item := range items {
		units[item.SKU] = model.CountOf(0)
	}

	return model.BoxType{
		ID:       newID(),
		BoxCount: model.CountOf(1),
		Dimensions: model.Dimensions{
			Unit: model.DefaultDimensionUnit,
		},
		WeightUnit:      model.DefaultWeightUnit,
		UnitsPerProduct: units,
		Expanded:        true,
	}
}

// InitSession builds the editing session for a shipment. Persisted packing
// lines are turned back into box types and the planned total starts equal to
// the defined total; a shipment without lines starts with one default box type.
func InitSession(shipment model.ShipmentRecord, items []model.ShipmentLineItem) model.PackingSession {
	lineItems := make([]model.ShipmentLineItem, len(items))
	copy(lineItems, items)

	session := model.PackingSession{
		ShipmentID: shipment.Identifier(),
		Items:      lineItems,
	}

	if len(shipment.PackingLines) == 0 {
		session.BoxTypes = []model.BoxType{NewBoxType(lineItems)}
		return session
	}

	session.BoxTypes = FromWireFormat(shipment.PackingLines, lineItems)
	session.PlannedTotalBoxes = model.CountOf(DefinedTotalBoxes(session))
	return session
}

// AddBoxType appends a default box type.
func AddBoxType(s model.PackingSession) model.PackingSession {
	next := s.Clone()
	next.BoxTypes = append(next.BoxTypes, NewBoxType(next.Items))
	return next
}

// RemoveBoxType removes the box type with id. The last remaining box type is
// never removed, and an unknown id leaves the session unchanged.
func RemoveBoxType(s model.PackingSession, id string) model.PackingSession {
	idx := s.BoxTypeIndex(id)
	if idx < 0 || len(s.BoxTypes) <= 1 {
		return s
	}

	next := s.Clone()
	next.BoxTypes = append(next.BoxTypes[:idx], next.BoxTypes[idx+1:]...)
	return next
}

// ToggleExpanded flips the collapsed/expanded flag of a box type.
func ToggleExpanded(s model.PackingSession, id string) (model.PackingSession, error) {
	idx := s.BoxTypeIndex(id)
	if idx < 0 {
		return s, ErrBoxTypeNotFound
	}

	next := s.Clone()
	next.BoxTypes[idx].Expanded = !next.BoxTypes[idx].Expanded
	return next, nil
}
