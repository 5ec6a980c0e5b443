// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/logger"
)

// InitializeLogger initializes the global logger. An empty level means info.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
