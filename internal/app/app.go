package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/stargridgo/internal/config"
	"github.com/vk/stargridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	mission    *config.Model
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the loaded
// mission model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the mission into the format-agnostic model first.
	mission, err := loader.Load(ctx, appConfig.MissionPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Mission loaded and translated into unified model.", "runs", len(mission.Runs))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		mission: mission,
	}
}

// Mission returns the loaded mission model. This is primarily for testing.
func (a *App) Mission() *config.Model {
	return a.mission
}
