//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureCreateLog makes CreateLog deliver each entry on the returned channel.
func captureCreateLog(m *mocks.MockLoggingService) <-chan *model.LogEntry {
	entries := make(chan *model.LogEntry, 8)
	m.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			entries <- args.Get(1).(*model.LogEntry)
		}).
		Return(nil)
	return entries
}

func receiveEntry(t *testing.T, entries <-chan *model.LogEntry) *model.LogEntry {
	t.Helper()
	select {
	case entry := <-entries:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("no log entry written")
		return nil
	}
}

func auditRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.POST("/sessions/:id/commit", handler)
	return router
}

func TestAuditLog(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	entries := captureCreateLog(svc)

	router := auditRouter(func(c *gin.Context) {
		SetPackingContext(c, c.Param("id"), "abc123")
		AuditLog(svc, c, AuditActionSessionOpened, "Packing session opened", map[string]interface{}{"items": 2})
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/sessions/session-1/commit", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := receiveEntry(t, entries)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, AuditActionSessionOpened, entry.Action)
	assert.Equal(t, "Packing session opened", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "session-1", entry.SessionID)
	assert.Equal(t, "abc123", entry.ShipmentID)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, 2, entry.Fields["items"])
	assert.Empty(t, entry.Error)
}

func TestAuditLogError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError string
	}{
		{name: "records the error", err: errors.New("upstream returned 500"), expectedError: "upstream returned 500"},
		{name: "nil error", err: nil, expectedError: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockLoggingService)
			entries := captureCreateLog(svc)

			router := auditRouter(func(c *gin.Context) {
				AuditLogError(svc, c, AuditActionCommitFailed, "Error saving packing", tt.err, nil)
				c.Status(http.StatusBadGateway)
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/sessions/session-1/commit", nil))

			entry := receiveEntry(t, entries)
			assert.Equal(t, "error", entry.Level)
			assert.Equal(t, AuditActionCommitFailed, entry.Action)
			assert.Equal(t, tt.expectedError, entry.Error)
		})
	}
}

func TestAuditLog_NilService(t *testing.T) {
	router := auditRouter(func(c *gin.Context) {
		AuditLog(nil, c, AuditActionSessionClosed, "closed", nil)
		AuditLogError(nil, c, AuditActionCommitFailed, "failed", errors.New("boom"), nil)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/session-1/commit", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_UsesAsyncLogger(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	entries := captureCreateLog(svc)
	InitAsyncLogger(svc, AsyncLoggerConfig{NumWorkers: 1, BatchSize: 1})
	defer StopAsyncLogger()

	router := auditRouter(func(c *gin.Context) {
		AuditLog(svc, c, AuditActionSessionClosed, "Packing session closed", nil)
		c.Status(http.StatusNoContent)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/sessions/session-1/commit", nil))

	entry := receiveEntry(t, entries)
	assert.Equal(t, AuditActionSessionClosed, entry.Action)
	assert.Eventually(t, func() bool {
		return GetAsyncLogger().Stats().Written == 1
	}, time.Second, 5*time.Millisecond)
}
