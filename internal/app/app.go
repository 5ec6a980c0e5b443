// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/http"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// Application is the wired service: its router plus the components that
// need an orderly shutdown.
type Application struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	// Logger first; everything below logs during setup.
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	serviceComponents := InitializeServices(cfg, loggingService)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &Application{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services: serviceComponents,
		Database: dbComponents,
	}
}

// Close drains buffered logs, stops the session store and disconnects from
// MongoDB. Call it after the HTTP server has shut down.
func (a *Application) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	a.Services.Stop()
	return a.Database.Close(ctx)
}
