// Package service contains the business logic for the packing planner.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/events"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/service/cache"
	"github.com/guttosm/pack-planner/internal/shipments"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSessionCapacity bounds the number of open packing sessions.
	DefaultSessionCapacity = 1000
	// DefaultSessionTTL is how long an untouched session stays open.
	DefaultSessionTTL = 30 * time.Minute

	auditActionPacked = "shipment.packed"
)

// PackingService defines the interface for packing session operations.
type PackingService interface {
	// Open starts a new editing session for a shipment.
	Open(ctx context.Context, shipment model.ShipmentRecord, items []model.ShipmentLineItem) (*Editor, error)

	// Get returns the editor for an open session.
	Get(id string) (*Editor, error)

	// Close abandons a session.
	Close(ctx context.Context, id string) error

	// Stats returns session store metrics.
	Stats() cache.Metrics

	// Stop releases background resources.
	Stop()
}

// Option configures a PackingServiceImpl.
type Option func(*PackingServiceImpl)

// WithCapacity sets the maximum number of open sessions. The least recently
// used session is closed when the limit is exceeded.
func WithCapacity(capacity int) Option {
	return func(s *PackingServiceImpl) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithSessionTTL sets the idle timeout of a session.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *PackingServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithShards spreads sessions over several store shards.
func WithShards(n int) Option {
	return func(s *PackingServiceImpl) {
		s.shards = n
	}
}

// WithAdvisoryTTL sets how long clamp advisories stay visible.
func WithAdvisoryTTL(ttl time.Duration) Option {
	return func(s *PackingServiceImpl) {
		s.advisoryTTL = ttl
	}
}

// WithPublisher publishes an event after each successful commit.
func WithPublisher(p events.Publisher) Option {
	return func(s *PackingServiceImpl) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLoggingService writes an audit entry after each successful commit.
func WithLoggingService(ls LoggingService) Option {
	return func(s *PackingServiceImpl) {
		s.audit = ls
	}
}

// WithClock replaces time.Now for sessions and the store.
func WithClock(now func() time.Time) Option {
	return func(s *PackingServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// PackingServiceImpl keeps open editors in a TTL LRU store. Evicted
// sessions are closed.
type PackingServiceImpl struct {
	client      shipments.Client
	store       cache.CacheWithMetrics[*Editor]
	capacity    int
	ttl         time.Duration
	shards      int
	advisoryTTL time.Duration
	publisher   events.Publisher
	audit       LoggingService
	now         func() time.Time
	newID       func() string
}

// NewPackingService creates a packing service that saves through client.
func NewPackingService(client shipments.Client, opts ...Option) *PackingServiceImpl {
	s := &PackingServiceImpl{
		client:      client,
		capacity:    DefaultSessionCapacity,
		ttl:         DefaultSessionTTL,
		advisoryTTL: DefaultAdvisoryTTL,
		publisher:   events.NoopPublisher{},
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	storeOpts := []cache.Option[*Editor]{
		cache.WithClock[*Editor](s.now),
		cache.WithOnEvict[*Editor](s.onEvict),
		cache.WithRecorder[*Editor](metrics.RecordSessionOperation),
	}
	if s.shards > 1 {
		s.store = cache.NewSharded(s.capacity, s.ttl, s.shards, storeOpts...)
	} else {
		s.store = cache.NewTTLCache(s.capacity, s.ttl, storeOpts...)
	}
	metrics.UpdateSessionMetrics(0, s.capacity)

	return s
}

// Open starts a new editing session for a shipment.
func (s *PackingServiceImpl) Open(_ context.Context, shipment model.ShipmentRecord, items []model.ShipmentLineItem) (*Editor, error) {
	id := s.newID()
	editor := NewEditor(id, shipment, items, s.client,
		WithOnSave(s.afterSave),
		WithEditorAdvisoryTTL(s.advisoryTTL),
		WithEditorClock(s.now),
	)

	s.store.Set(id, editor)
	s.updateMetrics()

	log.Info().
		Str("session_id", id).
		Str("shipment_id", shipment.Identifier()).
		Int("items", len(items)).
		Int("packing_lines", len(shipment.PackingLines)).
		Msg("Packing session opened")

	return editor, nil
}

// Get returns the editor for an open session.
func (s *PackingServiceImpl) Get(id string) (*Editor, error) {
	editor, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return editor, nil
}

// Close abandons a session. Closing an unknown session returns ErrSessionNotFound.
func (s *PackingServiceImpl) Close(_ context.Context, id string) error {
	if _, ok := s.store.Get(id); !ok {
		return ErrSessionNotFound
	}
	s.store.Invalidate(id)
	s.updateMetrics()
	return nil
}

// Stats returns session store metrics.
func (s *PackingServiceImpl) Stats() cache.Metrics {
	return s.store.Metrics()
}

// Stop releases the store's background goroutines.
func (s *PackingServiceImpl) Stop() {
	s.store.Stop()
}

func (s *PackingServiceImpl) onEvict(id string, editor *Editor, reason cache.EvictReason) {
	editor.Close()
	if reason != cache.EvictInvalidated {
		log.Info().
			Str("session_id", id).
			Str("reason", string(reason)).
			Msg("Packing session evicted")
	}
}

func (s *PackingServiceImpl) updateMetrics() {
	m := s.store.Metrics()
	metrics.UpdateSessionMetrics(m.Size, m.Capacity)
}

// afterSave publishes the packed event and writes the audit entry. Failures
// are logged; the save itself already succeeded.
func (s *PackingServiceImpl) afterSave(ctx context.Context, record *model.ShipmentRecord) {
	if err := s.publisher.PublishShipmentPacked(ctx, record); err != nil {
		log.Error().Err(err).Str("shipment_id", record.Identifier()).Msg("Failed to publish shipment packed event")
	}

	if s.audit == nil {
		return
	}

	entry := (&model.LogEntry{
		Timestamp:  s.now(),
		Level:      "info",
		Message:    "Packing saved",
		Action:     auditActionPacked,
		ShipmentID: record.Identifier(),
	}).WithFields(map[string]interface{}{
		"status":        string(record.Status),
		"packing_lines": len(record.PackingLines),
	})
	if err := s.audit.CreateLog(ctx, entry); err != nil {
		log.Error().Err(err).Str("shipment_id", record.Identifier()).Msg("Failed to write packing audit entry")
	}
}
