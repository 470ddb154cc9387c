package inbound

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgrouter"
)

type levelStore interface {
	Level() pkglog.Level
	SetLevel(v any) error
}

type Dependency struct {
	Loggers pkgrouter.LoggerFactory
	Levels  levelStore
	Limiter *rate.Limiter

	// MaxBodyBytes caps the decoded submit body; 0 means no cap.
	MaxBodyBytes int64
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, dep Dependency) {
	end := &HTTPEndpoint{loggers: dep.Loggers, levels: dep.Levels}

	r.Handle(http.MethodPost, "/log/:level", http.HandlerFunc(end.SubmitLog),
		pkgrouter.MiddlewareRateLimit(dep.Limiter),
		pkgrouter.MiddlewareDecompress(dep.MaxBodyBytes),
	)

	r.GET("/log/level", end.GetLevel)
	r.PUT("/log/level", end.SetLevel)
}
