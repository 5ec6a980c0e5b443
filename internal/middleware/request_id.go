// Package middleware provides HTTP middleware components for the packing planner.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// SessionIDKey is the context key for the packing session a request works on.
	SessionIDKey ContextKey = "session_id"
	// ShipmentIDKey is the context key for the shipment behind that session.
	ShipmentIDKey ContextKey = "shipment_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is kept, otherwise a UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return getString(c, RequestIDKey)
}

// SetPackingContext records the session and shipment a handler resolved so
// request logs and audit entries can carry them.
func SetPackingContext(c *gin.Context, sessionID, shipmentID string) {
	if sessionID != "" {
		c.Set(string(SessionIDKey), sessionID)
	}
	if shipmentID != "" {
		c.Set(string(ShipmentIDKey), shipmentID)
	}
}

// GetSessionID returns the session ID set by SetPackingContext.
func GetSessionID(c *gin.Context) string {
	return getString(c, SessionIDKey)
}

// GetShipmentID returns the shipment ID set by SetPackingContext.
func GetShipmentID(c *gin.Context) string {
	return getString(c, ShipmentIDKey)
}

func getString(c *gin.Context, key ContextKey) string {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
