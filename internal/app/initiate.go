package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgconfig"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgrouter"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgroutine"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	// A .env file in the working directory only fills variables not already set.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, defaults)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.settings = loadSettings(cfg)
	if err := a.settings.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if a.settings.TZ != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", a.settings.TZ)
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)

	uid, err := pkguid.NewStringID(a.settings.Generator)
	if err != nil {
		slog.Error("failed to init correlation id generator", "generator", a.settings.Generator, "error", err)
		os.Exit(1)
	}
	a.uuid = uid

	a.loggers = pkglog.NewFactory(pkglog.Options{Module: a.module})
	a.applyLogLevel(a.settings.LogLevel)

	a.config.OnChange(func() {
		a.applyLogLevel(a.config.GetString("log.level"))
	})
}

// applyLogLevel sets the default level of request loggers and of lifecycle
// logging. An empty value means debug; an invalid one keeps the current level.
func (a *App) applyLogLevel(raw string) {
	level := pkglog.LevelDebug
	if raw = strings.TrimSpace(raw); raw != "" {
		parsed, err := pkglog.ParseLevel(raw)
		if err != nil {
			slog.Warn("ignoring invalid log level", "value", raw, "level", a.loggers.Level().String(), "error", err)
			return
		}
		level = parsed
	}

	if err := a.loggers.SetLevel(level); err != nil {
		slog.Warn("failed to set log level", "value", raw, "error", err)
		return
	}
	pkglog.InitLogging(a.module, level)
	slog.Info("log level applied", "level", level.String())
}

func (a *App) initHTTPServer() {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.router = pkgrouter.NewRouter(a.uuid, a.loggers, corsHandler.Handler)

	a.httpServer = &http.Server{
		Addr:              a.settings.Address,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
