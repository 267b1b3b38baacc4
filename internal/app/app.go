package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/sysmlgraph/internal/config"
	"github.com/specialistvlad/sysmlgraph/internal/ctxlog"
	"github.com/specialistvlad/sysmlgraph/internal/metrics"
	"github.com/specialistvlad/sysmlgraph/internal/props"
	"github.com/specialistvlad/sysmlgraph/internal/validate"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *config.Model
	schema    *props.Schema
	validator *validate.Validator
	registry  *prometheus.Registry
}

// NewApp is the constructor for the main application. Reports go to outW
// and logs to logW. Every App owns its logger and metrics registry.
func NewApp(outW, logW io.Writer, appConfig *Config) (*App, error) {
	model, err := appConfig.resolve(context.Background())
	if err != nil {
		return nil, err
	}

	logger := newLogger(model.Log, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.", "level", model.Log.Level, "format", model.Log.Format)

	schema, err := loadSchema(ctx, model.Schema.Manifests)
	if err != nil {
		return nil, err
	}
	logger.Debug("Property schema ready.", "kinds", len(schema.Kinds()), "manifests", len(model.Schema.Manifests))

	opts := append(model.ValidatorOptions(), validate.WithSchema(schema), validate.WithLogger(logger))

	var registry *prometheus.Registry
	if model.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		recorder, err := metrics.New(registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, validate.WithRecorder(recorder))
		logger.Debug("Metrics recorder registered.")
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    model,
		schema:    schema,
		validator: validate.New(opts...),
		registry:  registry,
	}, nil
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the resolved configuration.
func (a *App) Config() *config.Model {
	return a.config
}

// Schema returns the property schema in effect.
func (a *App) Schema() *props.Schema {
	return a.schema
}

// Validator returns the configured validator.
func (a *App) Validator() *validate.Validator {
	return a.validator
}

// Gatherer returns the metrics registry, or nil when metrics are disabled.
func (a *App) Gatherer() prometheus.Gatherer {
	if a.registry == nil {
		return nil
	}
	return a.registry
}

// Output returns the writer reports are printed to.
func (a *App) Output() io.Writer {
	return a.outW
}
