// Package pkglog is the structured logger of a service module.
//
// A Logger writes one JSON object per line with the keys timestamp, level,
// module, correlationId and message, in that order:
//
//	{"timestamp":"2026-01-02T03:04:05.678Z","level":"warn","module":"scoring","correlationId":"0193...","message":"hello"}
//
// Records below the logger's level are dropped. The level is validated on
// every change (see ResolveLevel) so an invalid threshold is never stored.
//
// The correlation ID is not stored on the logger. It is read from a
// CorrelationSource each time a record is built; request loggers built by a
// Factory read it from the request context.
//
// The package also configures the default slog logger used for lifecycle
// messages (InitLogging).
package pkglog
