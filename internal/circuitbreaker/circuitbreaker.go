// Package circuitbreaker protects calls to remote dependencies (the shipments
// API and MongoDB) with a circuit breaker built on sony/gobreaker.
package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed means calls pass through normally.
	StateClosed State = iota
	// StateOpen means calls are rejected immediately.
	StateOpen
	// StateHalfOpen means a limited number of trial calls are let through.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

func fromGobreaker(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive successes needed to close the circuit.
	SuccessThreshold int
	// Timeout is the duration to wait before attempting to half-open the circuit.
	Timeout time.Duration
	// Name is the name of the circuit breaker (for logging and health reports).
	Name string
	// IsFailure decides whether an error counts against the circuit. Nil
	// counts every error. Errors that do not count are still returned.
	IsFailure func(error) bool
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config Config
	cb     *gobreaker.CircuitBreaker
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	failureThreshold := uint32(1)
	if config.FailureThreshold > 0 {
		failureThreshold = uint32(config.FailureThreshold)
	}
	maxRequests := uint32(1)
	if config.SuccessThreshold > 0 {
		maxRequests = uint32(config.SuccessThreshold)
	}

	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: maxRequests,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			event := log.Info()
			if to == gobreaker.StateOpen {
				event = log.Warn()
			}
			event.
				Str("circuit_breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	}

	return &CircuitBreaker{
		config: config,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Execute executes a function with circuit breaker protection.
// Returns ErrCircuitOpen if the circuit is open.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var ignored error
	_, err := cb.cb.Execute(func() (interface{}, error) {
		callErr := fn()
		if callErr != nil && cb.config.IsFailure != nil && !cb.config.IsFailure(callErr) {
			ignored = callErr
			return nil, nil
		}
		return nil, callErr
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Debug().
			Str("circuit_breaker", cb.config.Name).
			Msg("Call rejected by open circuit")
		return ErrCircuitOpen
	}
	if err != nil {
		return err
	}
	return ignored
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	return fromGobreaker(cb.cb.State())
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats returns circuit breaker statistics.
type Stats struct {
	Name         string `json:"name"`
	State        string `json:"state"`
	Requests     uint32 `json:"requests"`
	FailureCount int    `json:"failure_count"`
	SuccessCount int    `json:"success_count"`
	IsHealthy    bool   `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	counts := cb.cb.Counts()
	state := cb.State()

	return Stats{
		Name:         cb.config.Name,
		State:        state.String(),
		Requests:     counts.Requests,
		FailureCount: int(counts.ConsecutiveFailures),
		SuccessCount: int(counts.ConsecutiveSuccesses),
		IsHealthy:    state == StateClosed,
	}
}
