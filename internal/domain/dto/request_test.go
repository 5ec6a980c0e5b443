package dto

import (
	"encoding/json"
	"testing"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		items         []model.ShipmentLineItem
		expectedError error
	}{
		{
			name:  "valid request",
			items: []model.ShipmentLineItem{{SKU: "WH-001", Quantity: 100}, {SKU: "CB-010", Quantity: 0}},
		},
		{
			name: "no items",
		},
		{
			name:  "empty items",
			items: []model.ShipmentLineItem{},
		},
		{
			name:  "quantity at upper bound",
			items: []model.ShipmentLineItem{{SKU: "WH-001", Quantity: model.MaxCount}},
		},
		{
			name:          "quantity beyond upper bound",
			items:         []model.ShipmentLineItem{{SKU: "WH-001", Quantity: model.MaxCount + 1}},
			expectedError: ErrInvalidItem,
		},
		{
			name:          "blank sku",
			items:         []model.ShipmentLineItem{{SKU: " ", Quantity: 1}},
			expectedError: ErrInvalidItem,
		},
		{
			name:          "negative quantity",
			items:         []model.ShipmentLineItem{{SKU: "WH-001", Quantity: -1}},
			expectedError: ErrInvalidItem,
		},
		{
			name:          "duplicate sku",
			items:         []model.ShipmentLineItem{{SKU: "WH-001", Quantity: 1}, {SKU: "WH-001", Quantity: 2}},
			expectedError: ErrDuplicateSKU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := OpenSessionRequest{Items: tt.items}
			err := req.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenSessionRequest_ValidatePackingLines(t *testing.T) {
	items := []model.ShipmentLineItem{{SKU: "WH-001", Quantity: 100}}
	tests := []struct {
		name          string
		line          model.PackingLine
		expectedError error
	}{
		{name: "ordinary line", line: model.PackingLine{BoxCount: 4, UnitsPerBox: []model.UnitsPerBox{{SKU: "WH-001", Quantity: 25}}}},
		{name: "negative count is left to validation", line: model.PackingLine{BoxCount: -1}},
		{name: "box count overflowing products", line: model.PackingLine{BoxCount: 4611686018427387904}, expectedError: ErrInvalidPackingLine},
		{name: "units beyond bound", line: model.PackingLine{BoxCount: 2, UnitsPerBox: []model.UnitsPerBox{{SKU: "WH-001", Quantity: model.MaxCount + 1}}}, expectedError: ErrInvalidPackingLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := OpenSessionRequest{
				Shipment: model.ShipmentRecord{ID: "abc123", PackingLines: []model.PackingLine{tt.line}},
				Items:    items,
			}
			err := req.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldEditRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       FieldEditRequest
		expectedError error
	}{
		{name: "box count", request: FieldEditRequest{Field: FieldBoxCount}},
		{name: "units with sku", request: FieldEditRequest{Field: FieldUnits, SKU: "WH-001"}},
		{name: "weight unit", request: FieldEditRequest{Field: FieldWeightUnit}},
		{name: "units without sku", request: FieldEditRequest{Field: FieldUnits}, expectedError: ErrMissingSKU},
		{name: "unknown field", request: FieldEditRequest{Field: "color"}, expectedError: ErrUnknownEditField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldEditRequest_RawValue(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{`{"field":"units","value":"25"}`, "25"},
		{`{"field":"units","value":25}`, "25"},
		{`{"field":"weight","value":12.5}`, "12.5"},
		{`{"field":"weight","value":""}`, ""},
		{`{"field":"weight","value":null}`, ""},
		{`{"field":"weight"}`, ""},
		{`{"field":"dimensionUnit","value":"cm"}`, "cm"},
		{`{"field":"boxCount","value":-1}`, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req FieldEditRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, req.RawValue())
		})
	}
}

func TestPlannedTotalRequest_RawValue(t *testing.T) {
	var req PlannedTotalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"value": 4}`), &req))
	assert.Equal(t, "4", req.RawValue())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "sku: is required for units", ErrMissingSKU.Error())
}

func TestAuditQueryRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       AuditQueryRequest
		expectedError error
	}{
		{name: "shipment scope", request: AuditQueryRequest{ShipmentID: "abc123"}},
		{name: "session scope with paging", request: AuditQueryRequest{SessionID: "s-1", Limit: MaxAuditLimit, Skip: 10}},
		{name: "no scope", request: AuditQueryRequest{Action: "shipment.packed"}, expectedError: ErrMissingAuditScope},
		{name: "blank scope", request: AuditQueryRequest{ShipmentID: "  "}, expectedError: ErrMissingAuditScope},
		{name: "limit too large", request: AuditQueryRequest{ShipmentID: "abc123", Limit: MaxAuditLimit + 1}, expectedError: ErrInvalidPage},
		{name: "negative limit", request: AuditQueryRequest{ShipmentID: "abc123", Limit: -1}, expectedError: ErrInvalidPage},
		{name: "negative skip", request: AuditQueryRequest{ShipmentID: "abc123", Skip: -1}, expectedError: ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditQueryRequest_QueryOptions(t *testing.T) {
	req := AuditQueryRequest{ShipmentID: " abc123 ", Action: "shipment.packed", Skip: 5}

	opts := req.QueryOptions()

	assert.Equal(t, model.LogQueryOptions{
		ShipmentID: "abc123",
		Action:     "shipment.packed",
		Limit:      DefaultAuditLimit,
		Skip:       5,
	}, opts)
}
