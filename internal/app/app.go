package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/hcl"
	"github.com/specialistvlad/variantgrid/internal/yamlconfig"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	config *Config
}

// NewApp is the constructor for the main application. Reports summaries go
// to outW and logs to logW. A nil loader selects one from the configuration
// path: YAML for .yaml/.yml files, HCL otherwise.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = LoaderFor(appConfig.ConfigPath, appConfig.BuildDir)
	}

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
		config: appConfig,
	}
}

// LoaderFor picks the configuration loader for a path.
func LoaderFor(path, buildDir string) config.Loader {
	if yamlconfig.IsYAML(path) {
		return yamlconfig.NewLoader(buildDir)
	}
	return hcl.NewLoader(buildDir)
}

// withLogger attaches the app logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
