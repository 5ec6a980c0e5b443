//go:build !integration

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}

func newTestService(t *testing.T, client *mocks.MockShipmentsClient, opts ...Option) *PackingServiceImpl {
	t.Helper()
	svc := NewPackingService(client, opts...)
	svc.newID = sequentialIDs()
	t.Cleanup(svc.Stop)
	return svc
}

func TestPackingService_OpenGetClose(t *testing.T) {
	svc := newTestService(t, new(mocks.MockShipmentsClient))
	ctx := context.Background()

	editor, err := svc.Open(ctx, draftShipment(), twoItems())
	require.NoError(t, err)
	assert.Equal(t, "session-1", editor.ID())

	got, err := svc.Get("session-1")
	require.NoError(t, err)
	assert.Same(t, editor, got)

	require.NoError(t, svc.Close(ctx, "session-1"))
	assert.Equal(t, StateClosed, editor.State())

	_, err = svc.Get("session-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(ctx, "session-1"), ErrSessionNotFound)
}

func TestPackingService_OpenFromPersistedLines(t *testing.T) {
	svc := newTestService(t, new(mocks.MockShipmentsClient))
	shipment := draftShipment()
	shipment.PackingLines = []model.PackingLine{
		{BoxCount: 3, Dimensions: model.LineDimensions{Length: 20, Width: 15, Height: 10, Unit: "in"}, Weight: 12, WeightUnit: "lb",
			UnitsPerBox: []model.UnitsPerBox{{SKU: "WH-001", Quantity: 20}}},
		{BoxCount: 2, Dimensions: model.LineDimensions{Length: 10, Width: 10, Height: 10, Unit: "cm"}, Weight: 2, WeightUnit: "kg",
			UnitsPerBox: []model.UnitsPerBox{{SKU: "CB-010", Quantity: 20}, {SKU: "WH-001", Quantity: 20}}},
	}

	editor, err := svc.Open(context.Background(), shipment, twoItems())
	require.NoError(t, err)

	snap := editor.Snapshot()
	require.Len(t, snap.Session.BoxTypes, 2)
	assert.Equal(t, 5, snap.Session.PlannedTotalBoxes.Int())
	assert.True(t, snap.Summary.FullyAssigned)
	assert.Empty(t, snap.Warnings)
}

func TestPackingService_IdleSessionsExpire(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(t, new(mocks.MockShipmentsClient), WithClock(clock.Now), WithSessionTTL(10*time.Minute))

	editor, err := svc.Open(context.Background(), draftShipment(), singleItem())
	require.NoError(t, err)

	clock.Advance(9 * time.Minute)
	_, err = svc.Get(editor.ID())
	require.NoError(t, err, "access extends the session")

	clock.Advance(9 * time.Minute)
	_, err = svc.Get(editor.ID())
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	_, err = svc.Get(editor.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, StateClosed, editor.State())
}

func TestPackingService_CapacityEvictsLeastRecentlyUsed(t *testing.T) {
	svc := newTestService(t, new(mocks.MockShipmentsClient), WithCapacity(2))
	ctx := context.Background()

	first, _ := svc.Open(ctx, draftShipment(), singleItem())
	second, _ := svc.Open(ctx, draftShipment(), singleItem())
	_, err := svc.Get(first.ID())
	require.NoError(t, err)

	_, _ = svc.Open(ctx, draftShipment(), singleItem())

	assert.Equal(t, StateClosed, second.State())
	_, err = svc.Get(second.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotEqual(t, StateClosed, first.State())

	stats := svc.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 2, stats.Capacity)
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestPackingService_ShardedStore(t *testing.T) {
	svc := newTestService(t, new(mocks.MockShipmentsClient), WithCapacity(64), WithShards(4))

	for i := 0; i < 10; i++ {
		_, err := svc.Open(context.Background(), draftShipment(), singleItem())
		require.NoError(t, err)
	}

	assert.Equal(t, 10, svc.Stats().Size)
	assert.Equal(t, 64, svc.Stats().Capacity)
}

func TestPackingService_AfterSave(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
		auditErr   error
	}{
		{name: "publishes and audits"},
		{name: "publish failure does not fail the commit", publishErr: errors.New("kafka unavailable")},
		{name: "audit failure does not fail the commit", auditErr: errors.New("mongo unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockShipmentsClient)
			publisher := new(mocks.MockEventPublisher)
			audit := new(mocks.MockLoggingService)
			svc := newTestService(t, client, WithPublisher(publisher), WithLoggingService(audit))

			editor, err := svc.Open(context.Background(), draftShipment(), singleItem())
			require.NoError(t, err)
			fillBox(t, editor, editor.Snapshot().Session.BoxTypes[0].ID)

			saved := &model.ShipmentRecord{ID: "abc123", Status: model.ShipmentStatusPacked, PackingLines: []model.PackingLine{{BoxCount: 1}}}
			client.On("UpdatePacking", mock.Anything, "abc123", mock.Anything, model.ShipmentStatusPacked).Return(saved, nil)
			publisher.On("PublishShipmentPacked", mock.Anything, saved).Return(tt.publishErr).Once()
			audit.On("CreateLog", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
				return e.Action == auditActionPacked && e.ShipmentID == "abc123" && e.Fields["packing_lines"] == 1
			})).Return(tt.auditErr).Once()

			result, err := editor.Commit(context.Background())

			require.NoError(t, err)
			assert.Same(t, saved, result.Record)
			publisher.AssertExpectations(t)
			audit.AssertExpectations(t)
		})
	}
}
