//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options match everything",
			opts:     LogQueryOptions{},
			expected: bson.M{},
		},
		{
			name: "exact fields",
			opts: LogQueryOptions{ShipmentID: "abc123", Action: "shipment.packed", Level: "info"},
			expected: bson.M{
				"shipment_id": "abc123",
				"action":      "shipment.packed",
				"level":       "info",
			},
		},
		{
			name: "path is a case insensitive regex",
			opts: LogQueryOptions{Path: "/commit", SessionID: "s-1"},
			expected: bson.M{
				"path":       bson.M{"$regex": "/commit", "$options": "i"},
				"session_id": "s-1",
			},
		},
		{
			name: "time range",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end, RequestID: "req-1"},
			expected: bson.M{
				"request_id": "req-1",
				"timestamp":  bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			name:     "open ended time range",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.Filter())
		})
	}
}

type stubLogsRepo struct {
	err     error
	created int
}

func (s *stubLogsRepo) Create(context.Context, *LogEntryDocument) error {
	s.created++
	return s.err
}

func (s *stubLogsRepo) CreateMany(_ context.Context, entries []*LogEntryDocument) error {
	s.created += len(entries)
	return s.err
}

func (s *stubLogsRepo) Query(context.Context, LogQueryOptions) ([]*LogEntryDocument, error) {
	return nil, s.err
}

func (s *stubLogsRepo) Count(context.Context, LogQueryOptions) (int64, error) {
	return int64(s.created), s.err
}

func TestLogsRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogsRepo{err: errors.New("server selection timeout")}
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb-logs",
	})
	repo := NewLogsRepositoryWithCircuitBreaker(stub, cb)

	assert.Error(t, repo.Create(ctx, &LogEntryDocument{Message: "one"}))
	assert.Error(t, repo.CreateMany(ctx, []*LogEntryDocument{{Message: "two"}}))
	require.True(t, cb.IsOpen())

	assert.NoError(t, repo.Create(ctx, &LogEntryDocument{Message: "dropped"}))
	assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{Message: "dropped"}}))
	assert.Equal(t, 2, stub.created)

	_, err := repo.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = repo.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	assert.Same(t, cb, repo.GetCircuitBreaker())
}

func TestLogsRepositoryWithCircuitBreaker_PassesThrough(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogsRepo{}
	repo := NewLogsRepositoryWithCircuitBreaker(stub, circuitbreaker.New(circuitbreaker.DefaultConfig()))

	require.NoError(t, repo.Create(ctx, &LogEntryDocument{Message: "one"}))
	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{}, {}}))

	count, err := repo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, "closed", repo.GetCircuitBreaker().GetStats().State)
}
