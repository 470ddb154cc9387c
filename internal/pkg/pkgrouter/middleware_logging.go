package pkgrouter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
)

// LoggerFactory builds the logger attached to a request.
type LoggerFactory interface {
	NewRequestLogger(ctx context.Context) pkglog.LevelLogger
}

type accessLogContextKey struct{}

// MiddlewareRequestLogger attaches a logger to each request and writes one
// access line when the request completes.
//
// A logger already on the context is reused. When the middleware appears more
// than once in a chain, only the outermost instance acts.
//
// The duration runs from arrival to the moment response headers are
// committed. The line is routed by status: below 400 debug, 4xx warn, 5xx
// error. Nothing is logged when the exchange is aborted before headers are
// sent (panic, hijack or cancelled request).
func MiddlewareRequestLogger(loggers LoggerFactory) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if ctx.Value(accessLogContextKey{}) != nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			logger, ok := pkglog.FromContext(ctx)
			if !ok {
				if loggers == nil {
					next.ServeHTTP(w, r)
					return
				}
				logger = loggers.NewRequestLogger(ctx)
				ctx = pkglog.WithLogger(ctx, logger)
			}
			r = r.WithContext(context.WithValue(ctx, accessLogContextKey{}, struct{}{}))

			tw := newTimingWriter(w)
			completed := false
			defer func() {
				logAccess(r, logger, tw, start, completed)
			}()

			next.ServeHTTP(tw, r)
			completed = true
		})
	}
}

func logAccess(r *http.Request, logger pkglog.LevelLogger, tw *timingWriter, start time.Time, completed bool) {
	if tw.hijacked {
		return
	}

	if !tw.headerSent() {
		if !completed || r.Context().Err() != nil {
			return
		}
		// The server will send an implicit 200; the header instant is unknown.
		_ = logByStatus(logger, http.StatusOK, accessMessage(r, http.StatusOK, ""))
		return
	}

	elapsed := formatMillis(tw.headerAt.Sub(start))
	_ = logByStatus(logger, tw.status, accessMessage(r, tw.status, elapsed))
}

func accessMessage(r *http.Request, status int, elapsed string) string {
	msg := fmt.Sprintf("%s %s - %d", strings.ToUpper(r.Method), r.URL.RequestURI(), status)
	if elapsed != "" {
		msg += " in " + elapsed + " ms"
	}
	return msg
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}

func logByStatus(logger pkglog.LevelLogger, status int, msg string) error {
	switch {
	case status < http.StatusBadRequest:
		return logger.Debug(msg)
	case status < http.StatusInternalServerError:
		return logger.Warn(msg)
	default:
		return logger.Error(msg)
	}
}
