package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// PackingRoutes handles packing session route registration.
type PackingRoutes struct {
	handler *PackingHandler
}

// NewPackingRoutes creates a new PackingRoutes instance.
func NewPackingRoutes(sessions service.PackingService, loggingService service.LoggingService) *PackingRoutes {
	return &PackingRoutes{
		handler: NewPackingHandler(sessions, loggingService),
	}
}

// RegisterRoutes registers the packing session routes under /packing-sessions.
func (r *PackingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	sessions := rg.Group("/packing-sessions")
	if cfg != nil && cfg.RequestTimeout > 0 {
		sessions.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	sessions.POST("", r.handler.OpenSession)

	session := sessions.Group("/:" + paramSessionID)
	{
		session.GET("", r.handler.GetSession)
		session.DELETE("", r.handler.CloseSession)

		session.POST("/box-types", r.handler.AddBoxType)
		session.DELETE("/box-types/:"+paramBoxTypeID, r.handler.RemoveBoxType)
		session.PATCH("/box-types/:"+paramBoxTypeID, r.handler.EditBoxType)
		session.POST("/box-types/:"+paramBoxTypeID+"/toggle", r.handler.ToggleBoxType)

		session.PUT("/planned-total-boxes", r.handler.SetPlannedTotalBoxes)
		session.DELETE("/advisory", r.handler.DismissAdvisory)
		session.GET("/validation", r.handler.Validate)
		session.POST("/commit", r.handler.Commit)
	}
}

// Handler returns the underlying packing handler.
func (r *PackingRoutes) Handler() *PackingHandler {
	return r.handler
}
