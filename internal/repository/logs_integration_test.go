//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("connection", func(t *testing.T) {
		assert.NotNil(t, db.Logs)
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("logs TTL can be replaced", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		require.NoError(t, db.SetLogsTTL(ctx, 7))

		cursor, err := db.Logs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []map[string]interface{}
		require.NoError(t, cursor.All(ctx, &indexes))

		var ttl interface{}
		for _, idx := range indexes {
			if idx["name"] == logsTTLIndexName {
				ttl = idx["expireAfterSeconds"]
			}
		}
		assert.EqualValues(t, 7*24*60*60, ttl)
	})
}

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewLogsRepository(db)

	base := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Create(ctx, &LogEntryDocument{
		Timestamp:  base,
		Level:      "info",
		Message:    "Packing saved",
		SessionID:  "session-1",
		ShipmentID: "abc123",
		Action:     "shipment.packed",
		Fields:     map[string]interface{}{"packing_lines": 2},
	}))
	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
		{Timestamp: base.Add(time.Second), Level: "info", Message: "HTTP request", RequestID: "req-1", Method: "PATCH", Path: "/api/packing-sessions/session-1/box-types/bt-1", StatusCode: 200},
		{Timestamp: base.Add(2 * time.Second), Level: "warn", Message: "HTTP request", RequestID: "req-2", Method: "POST", Path: "/api/packing-sessions/session-1/commit", StatusCode: 502},
	}))

	t.Run("query by shipment", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ShipmentID: "abc123"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "shipment.packed", entries[0].Action)
		assert.EqualValues(t, 2, entries[0].Fields["packing_lines"])
	})

	t.Run("query by path is case insensitive", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Path: "/COMMIT"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-2", entries[0].RequestID)
	})

	t.Run("newest first with limit", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Limit: 2})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "req-2", entries[0].RequestID)
		assert.Equal(t, "req-1", entries[1].RequestID)
	})

	t.Run("count by time range", func(t *testing.T) {
		from := base.Add(500 * time.Millisecond)
		count, err := repo.Count(ctx, LogQueryOptions{StartTime: &from})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, repo.Create(ctx, &LogEntryDocument{Level: "info", Message: "through breaker", RequestID: "cb-1"}))

	entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "cb-1"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
