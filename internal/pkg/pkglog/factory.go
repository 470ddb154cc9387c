package pkglog

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Factory builds request-scoped loggers that share a module name, an output
// sink and a default level.
type Factory struct {
	module string
	level  atomic.Int64
	out    io.Writer
	now    func() time.Time
}

// NewFactory creates a Factory. opts.Correlation is ignored: each logger
// reads the correlation ID of the context it was created for.
func NewFactory(opts Options) *Factory {
	opts = opts.withDefaults()

	f := &Factory{
		module: opts.Module,
		out:    &lockedWriter{w: opts.Output},
		now:    opts.Clock,
	}
	f.level.Store(int64(initialLevel(opts.Level)))

	return f
}

// NewLogger returns a logger bound to the correlation ID of ctx, starting at
// the factory's current default level.
func (f *Factory) NewLogger(ctx context.Context) *Logger {
	l := &Logger{
		module: f.module,
		cid:    ContextCorrelation(ctx),
		out:    f.out,
		now:    f.now,
	}
	l.level.Store(f.level.Load())
	return l
}

// NewRequestLogger is NewLogger behind the LevelLogger interface.
func (f *Factory) NewRequestLogger(ctx context.Context) LevelLogger {
	return f.NewLogger(ctx)
}

// Module returns the module name given to every logger.
func (f *Factory) Module() string {
	return f.module
}

// Level returns the default level for new loggers.
func (f *Factory) Level() Level {
	return Level(f.level.Load())
}

// SetLevel validates v and makes it the default level for new loggers.
func (f *Factory) SetLevel(v any) error {
	lvl, err := ResolveLevel(v)
	if err != nil {
		return err
	}
	f.level.Store(int64(lvl))
	return nil
}

// lockedWriter keeps lines from concurrent loggers from interleaving.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
