package shipments

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/domain/model"
)

// ErrUnavailable is returned while the circuit to the shipments API is open.
var ErrUnavailable = errors.New("shipments service is temporarily unavailable")

// ClientWithCircuitBreaker wraps a Client with circuit breaker protection.
type ClientWithCircuitBreaker struct {
	client         Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClientWithCircuitBreaker creates a new client wrapper with circuit breaker.
func NewClientWithCircuitBreaker(client Client, cb *circuitbreaker.CircuitBreaker) *ClientWithCircuitBreaker {
	return &ClientWithCircuitBreaker{
		client:         client,
		circuitBreaker: cb,
	}
}

// UpdatePacking forwards to the wrapped client unless the circuit is open.
func (c *ClientWithCircuitBreaker) UpdatePacking(ctx context.Context, shipmentID string, lines []model.PackingLine, status model.ShipmentStatus) (*model.ShipmentRecord, error) {
	var result *model.ShipmentRecord
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.client.UpdatePacking(ctx, shipmentID, lines, status)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (c *ClientWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
