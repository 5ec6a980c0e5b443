package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/service"
)

// AuditRoutes registers the read side of the packing audit trail.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(logs service.LoggingService) *AuditRoutes {
	return &AuditRoutes{handler: NewAuditHandler(logs)}
}

// RegisterRoutes registers GET /audit-entries.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/audit-entries", r.handler.ListEntries)
}
