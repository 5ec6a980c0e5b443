// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/http"
	"github.com/guttosm/pack-planner/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health checks and router configuration.
// dbComponents may be nil when MongoDB is disabled.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	var packingService service.PackingService
	if services != nil {
		packingService = services.PackingService
		healthHandler.RegisterCircuitBreaker("shipments_api", services.ShipmentsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		RequestTimeout:    cfg.Server.RequestTimeout,
		LoggingService:    loggingService,
		PackingService:    packingService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
