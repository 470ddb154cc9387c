package app

import (
	"log/slog"

	"github.com/FirstLegoLeague/ms-logger/internal/logapi"
)

func (a *App) initModules() {
	if a.settings.LogAPI {
		logapi.New(logapi.Dependency{
			Config:  a.config,
			Router:  a.router,
			Loggers: a.loggers,
		})
		slog.Info("module enabled", "name", "logapi")
	}
}
