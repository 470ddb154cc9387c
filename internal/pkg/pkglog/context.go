package pkglog

import "context"

type loggerContextKey struct{}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l LevelLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext returns the logger attached to ctx, if any.
func FromContext(ctx context.Context) (LevelLogger, bool) {
	l, ok := ctx.Value(loggerContextKey{}).(LevelLogger)
	return l, ok && l != nil
}
