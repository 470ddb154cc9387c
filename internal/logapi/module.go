package logapi

import (
	"golang.org/x/time/rate"

	"github.com/FirstLegoLeague/ms-logger/internal/logapi/inbound"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgconfig"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Loggers *pkglog.Factory
}

// New registers the log endpoints on the router.
func New(dep Dependency) {
	inbound.RegisterHTTPEndpoint(dep.Router, inbound.Dependency{
		Loggers: dep.Loggers,
		Levels:  dep.Loggers,
		Limiter: newLimiter(dep.Config.GetFloat("ratelimit.rps"), dep.Config.GetInt("ratelimit.burst")),

		MaxBodyBytes: dep.Config.GetInt("server.max_body_bytes"),
	})
}

func newLimiter(rps float64, burst int64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), int(burst))
}
