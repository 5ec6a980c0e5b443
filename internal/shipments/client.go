// Package shipments is the client of the remote shipments REST API that owns
// shipment records and their persisted packing lines.
package shipments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout = 15 * time.Second
	// excerptLength bounds the raw body quoted in a non-JSON error.
	excerptLength = 200
	maxBodyBytes  = 4 << 20
)

var (
	// ErrMissingShipmentData is returned when the API reports success without a shipment record.
	ErrMissingShipmentData = errors.New("invalid response: missing shipment data")
	// ErrInvalidShipmentData is returned when the API reports success with a
	// shipment record that cannot be decoded.
	ErrInvalidShipmentData = errors.New("invalid response: malformed shipment data")
)

// Client persists packing plans.
type Client interface {
	// UpdatePacking replaces the packing lines of a shipment and sets its
	// status. The returned record is the authoritative state after the save.
	UpdatePacking(ctx context.Context, shipmentID string, lines []model.PackingLine, status model.ShipmentStatus) (*model.ShipmentRecord, error)
}

// UpdatePackingRequest is the body of the packing update call.
type UpdatePackingRequest struct {
	PackingLines []model.PackingLine  `json:"packingLines"`
	Status       model.ShipmentStatus `json:"status"`
}

// envelope is the response wrapper used by every shipments API endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout of the default *http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithToken sends the given bearer token on every request.
func WithToken(token string) Option {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// HTTPClient implements Client over the shipments REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdatePacking sends PATCH {base}/shipments/{id}/packing.
func (c *HTTPClient) UpdatePacking(ctx context.Context, shipmentID string, lines []model.PackingLine, status model.ShipmentStatus) (*model.ShipmentRecord, error) {
	if lines == nil {
		lines = []model.PackingLine{}
	}
	body, err := json.Marshal(UpdatePackingRequest{PackingLines: lines, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to encode packing update: %w", err)
	}

	endpoint := fmt.Sprintf("%s/shipments/%s/packing", c.baseURL, url.PathEscape(shipmentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to update packing: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	log.Debug().
		Str("shipment_id", shipmentID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Shipments API responded")

	return decodeRecord(resp)
}

// decodeRecord unwraps the response envelope, turning every failure into an
// *APIError carrying the most specific message available. Whether the body is
// JSON is decided by parsing it; the Content-Type header is not consulted.
func decodeRecord(resp *http.Response) (*model.ShipmentRecord, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if json.Unmarshal(raw, &env) != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    nonJSONMessage(resp.StatusCode, raw),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(env),
		}
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrMissingShipmentData
	}

	var record model.ShipmentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShipmentData, err)
	}
	return &record, nil
}

func envelopeMessage(env envelope) string {
	if env.Message != "" {
		return env.Message
	}
	reason := env.Error
	if reason == "" {
		reason = "Unknown error"
	}
	return "API error: " + reason
}

func nonJSONMessage(status int, raw []byte) string {
	excerpt := []rune(string(raw))
	if len(excerpt) > excerptLength {
		excerpt = excerpt[:excerptLength]
	}
	return fmt.Sprintf("Server returned non-JSON response (Status: %d): %s...", status, string(excerpt))
}
