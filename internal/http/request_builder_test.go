//go:build !integration

package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestRequestBuilder_Bind(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		expectRaw   string
	}{
		{name: "string value", body: `{"field":"boxCount","value":"3"}`, expectRaw: "3"},
		{name: "number value", body: `{"field":"weight","value":2.5}`, expectRaw: "2.5"},
		{name: "invalid JSON", body: `{"field": invalid}`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, tt.body)

			var req dto.FieldEditRequest
			err := NewRequestBuilder(c).Bind(&req)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectRaw, req.RawValue())
		})
	}
}

func TestBuildRequest(t *testing.T) {
	c, _ := newJSONContext(t, `{"value":null}`)

	req, err := BuildRequest[dto.PlannedTotalRequest](c)

	require.NoError(t, err)
	assert.Empty(t, req.RawValue())
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{name: "valid edit", body: `{"field":"units","sku":"WH-001","value":"10"}`},
		{name: "units without sku", body: `{"field":"units","value":"10"}`, expectedErr: dto.ErrMissingSKU},
		{name: "unknown field", body: `{"field":"colour","value":"red"}`, expectedErr: dto.ErrUnknownEditField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, tt.body)

			req, err := BuildRequestAndValidate[dto.FieldEditRequest](c)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dto.FieldUnits, req.Field)
		})
	}
}

func TestBuildRequestAndValidate_BindError(t *testing.T) {
	c, _ := newJSONContext(t, `not json`)

	req, err := BuildRequestAndValidate[dto.OpenSessionRequest](c)

	assert.Error(t, err)
	assert.Nil(t, req)
}
