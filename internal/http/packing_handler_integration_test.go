//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/repository"
	"github.com/guttosm/pack-planner/internal/service"
	"github.com/guttosm/pack-planner/internal/shipments"
	"github.com/guttosm/pack-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShipmentsAPI answers the packing update with the lines it was sent.
// While failing is set it answers 503.
func fakeShipmentsAPI(t *testing.T, failing *atomic.Bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"success":false,"message":"maintenance"}`))
			return
		}

		var req shipments.UpdatePackingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for i := range req.PackingLines {
			req.PackingLines[i].ID = fmt.Sprintf("line-%d", i+1)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": model.ShipmentRecord{
				ID:           testShipmentID,
				ShipmentID:   "SHP-1",
				Status:       req.Status,
				PackingLines: req.PackingLines,
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPackingAPI_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})
	loggingService := service.NewLoggingService(repository.NewLogsRepository(db))

	var failing atomic.Bool
	api := fakeShipmentsAPI(t, &failing)
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 5,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "shipments_api",
		IsFailure:        shipments.IsUpstreamFailure,
	})
	client := shipments.NewClientWithCircuitBreaker(shipments.NewHTTPClient(api.URL), breaker)

	packingService := service.NewPackingService(client, service.WithLoggingService(loggingService))
	t.Cleanup(packingService.Stop)

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", HealthCheckFunc(db.HealthCheck))
	health.RegisterCircuitBreaker("shipments_api", breaker)

	cfg := DefaultRouterConfig()
	cfg.LoggingService = loggingService
	cfg.PackingService = packingService
	router := NewRouter(health, cfg)

	f := &packingFixture{t: t, router: router}
	snap := f.open()
	f.fill(snap)

	t.Run("readiness", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("upstream failure keeps the session open", func(t *testing.T) {
		failing.Store(true)
		defer failing.Store(false)

		w := f.do(http.MethodPost, "/api/packing-sessions/"+snap.ID+"/commit", nil)
		require.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
		assert.Equal(t, "Error saving packing: maintenance", decode[json.RawMessage](t, w).Message)

		w = f.do(http.MethodGet, "/api/packing-sessions/"+snap.ID, nil)
		got := decode[service.Snapshot](t, w).Data
		assert.Equal(t, service.StateSaveFailed, got.State)
		assert.Equal(t, 1, got.Session.BoxTypes[0].BoxCount.Int())
	})

	t.Run("manual retry saves", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/packing-sessions/"+snap.ID+"/commit", bytes.NewReader(nil))
		req.Header.Set(middleware.IdempotencyKeyHeader, "commit-"+snap.ID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		result := decode[service.CommitResult](t, w).Data
		require.NotNil(t, result.Record)
		assert.Equal(t, model.ShipmentStatusPacked, result.Record.Status)
		require.Len(t, result.Record.PackingLines, 1)
		assert.Equal(t, "line-1", result.Record.PackingLines[0].ID)
		assert.Equal(t, []model.UnitsPerBox{{SKU: "WH-001", Quantity: 10}}, result.Record.PackingLines[0].UnitsPerBox)
	})

	t.Run("audit trail", func(t *testing.T) {
		for _, action := range []string{middleware.AuditActionSessionOpened, middleware.AuditActionCommitFailed, "shipment.packed"} {
			action := action
			assert.Eventually(t, func() bool {
				n, err := loggingService.CountLogs(ctx, model.LogQueryOptions{ShipmentID: testShipmentID, Action: action})
				return err == nil && n == 1
			}, 5*time.Second, 50*time.Millisecond, action)
		}
	})
}
