package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgconfig"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgrouter"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgroutine"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config   pkgconfig.Config
	settings settings
	module   string

	// libraries
	uuid      pkguid.StringID
	loggers   *pkglog.Factory
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	terminate chan struct{}
	once      sync.Once

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	module := pkglog.ModuleName()
	pkglog.InitLogging(module, pkglog.LevelInfo)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:       ctx,
		cancel:    cancel,
		module:    module,
		terminate: make(chan struct{}),
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
