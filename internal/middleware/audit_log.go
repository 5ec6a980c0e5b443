package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/service"
)

// Audit actions recorded by the HTTP layer.
const (
	AuditActionSessionOpened = "session.opened"
	AuditActionSessionClosed = "session.closed"
	AuditActionCommitFailed  = "packing.commit_failed"
)

// AuditLog records an operator action against a packing session. It never
// blocks the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, action, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	enqueue(loggingService, newAuditEntry(c, "info", action, message, fields))
}

// AuditLogError is AuditLog for a failed action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueue(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, action, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		SessionID:  GetSessionID(c),
		ShipmentID: GetShipmentID(c),
		Action:     action,
		Fields:     fields,
	}
}
