// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the request
// validation rules.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// Editable fields of a box type.
const (
	FieldBoxCount      = "boxCount"
	FieldUnits         = "units"
	FieldLength        = "length"
	FieldWidth         = "width"
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldDimensionUnit = "dimensionUnit"
	FieldWeightUnit    = "weightUnit"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidItem is returned for a line item without SKU or with a quantity
	// outside [0, model.MaxCount].
	ErrInvalidItem = &ValidationError{Field: "items", Message: "every item needs a sku and a quantity between 0 and 1000000"}
	// ErrInvalidPackingLine is returned for a persisted packing line whose
	// counts lie outside [-model.MaxCount, model.MaxCount].
	ErrInvalidPackingLine = &ValidationError{Field: "shipment.packingLines", Message: "box counts and units must be between -1000000 and 1000000"}
	// ErrDuplicateSKU is returned when two line items share a SKU.
	ErrDuplicateSKU = &ValidationError{Field: "items", Message: "sku values must be unique"}
	// ErrUnknownEditField is returned for a field name the editor does not know.
	ErrUnknownEditField = &ValidationError{Field: "field", Message: "must be one of boxCount, units, length, width, height, weight, dimensionUnit, weightUnit"}
	// ErrMissingSKU is returned for a units edit without a SKU.
	ErrMissingSKU = &ValidationError{Field: "sku", Message: "is required for units"}
	// ErrMissingAuditScope is returned for an audit query without shipment or session.
	ErrMissingAuditScope = &ValidationError{Field: "shipmentId", Message: "shipmentId or sessionId is required"}
	// ErrInvalidPage is returned for a limit or skip outside the accepted range.
	ErrInvalidPage = &ValidationError{Field: "limit", Message: "limit must be between 1 and 200 and skip must not be negative"}
)

// Audit query paging.
const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

// OpenSessionRequest opens a packing session for a shipment.
//
// @Description Shipment and its line items to plan packing for
type OpenSessionRequest struct {
	Shipment model.ShipmentRecord     `json:"shipment"`
	Items    []model.ShipmentLineItem `json:"items"`
} // @name OpenSessionRequest

// Validate checks the line items. A shipment without items is valid.
func (r *OpenSessionRequest) Validate() error {
	seen := make(map[string]struct{}, len(r.Items))
	for _, item := range r.Items {
		if strings.TrimSpace(item.SKU) == "" || item.Quantity < 0 || item.Quantity > model.MaxCount {
			return ErrInvalidItem
		}
		if _, dup := seen[item.SKU]; dup {
			return ErrDuplicateSKU
		}
		seen[item.SKU] = struct{}{}
	}
	for _, line := range r.Shipment.PackingLines {
		if !withinCount(line.BoxCount) {
			return ErrInvalidPackingLine
		}
		for _, u := range line.UnitsPerBox {
			if !withinCount(u.Quantity) {
				return ErrInvalidPackingLine
			}
		}
	}
	return nil
}

// withinCount allows negative persisted values through; validation flags
// them once the session is open.
func withinCount(n int) bool {
	return n >= -model.MaxCount && n <= model.MaxCount
}

// FieldEditRequest edits one field of a box type. Value is the raw input as
// typed by the operator; numbers and strings are both accepted and null
// clears the field.
//
// @Description Edit of a single box type field
// @Example {"field": "units", "sku": "WH-001", "value": "25"}
type FieldEditRequest struct {
	Field string          `json:"field" binding:"required" example:"units"`
	SKU   string          `json:"sku,omitempty" example:"WH-001"`
	Value json.RawMessage `json:"value" swaggertype:"string" example:"25"`
} // @name FieldEditRequest

// Validate checks the field name and the SKU of units edits.
func (r *FieldEditRequest) Validate() error {
	switch r.Field {
	case FieldUnits:
		if r.SKU == "" {
			return ErrMissingSKU
		}
	case FieldBoxCount, FieldLength, FieldWidth, FieldHeight, FieldWeight, FieldDimensionUnit, FieldWeightUnit:
	default:
		return ErrUnknownEditField
	}
	return nil
}

// RawValue returns Value as the text the operator typed.
func (r *FieldEditRequest) RawValue() string {
	return rawValue(r.Value)
}

// PlannedTotalRequest sets the planned number of boxes.
//
// @Description Planned total number of boxes; empty or null clears it
type PlannedTotalRequest struct {
	Value json.RawMessage `json:"value" swaggertype:"string" example:"4"`
} // @name PlannedTotalRequest

// RawValue returns Value as the text the operator typed.
func (r *PlannedTotalRequest) RawValue() string {
	return rawValue(r.Value)
}

// rawValue turns a JSON scalar into input text: strings are unquoted, null
// and absent values are empty and numbers keep their literal form.
func rawValue(v json.RawMessage) string {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// AuditQueryRequest selects packing audit entries. At least one of
// ShipmentID and SessionID must be set.
type AuditQueryRequest struct {
	ShipmentID string `form:"shipmentId" example:"64f1c2d3e4b5a6978a1b2c3d"`
	SessionID  string `form:"sessionId"`
	Action     string `form:"action" example:"shipment.packed"`
	Limit      int    `form:"limit" example:"50"`
	Skip       int    `form:"skip" example:"0"`
}

// Validate checks the scope and paging. A zero limit means DefaultAuditLimit.
func (r *AuditQueryRequest) Validate() error {
	if strings.TrimSpace(r.ShipmentID) == "" && strings.TrimSpace(r.SessionID) == "" {
		return ErrMissingAuditScope
	}
	if r.Limit < 0 || r.Limit > MaxAuditLimit || r.Skip < 0 {
		return ErrInvalidPage
	}
	return nil
}

// QueryOptions converts the request into log query options.
func (r *AuditQueryRequest) QueryOptions() model.LogQueryOptions {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultAuditLimit
	}
	return model.LogQueryOptions{
		ShipmentID: strings.TrimSpace(r.ShipmentID),
		SessionID:  strings.TrimSpace(r.SessionID),
		Action:     strings.TrimSpace(r.Action),
		Limit:      limit,
		Skip:       r.Skip,
	}
}
