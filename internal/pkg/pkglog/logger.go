package pkglog

import (
	"io"
	"os"
	"sync/atomic"
	"time"
)

// LevelLogger is the set of convenience methods request-scoped code logs
// through.
type LevelLogger interface {
	Debug(msg string) error
	Info(msg string) error
	Warn(msg string) error
	Error(msg string) error
	Fatal(msg string) error
}

// Options configures New.
type Options struct {
	// Module names the emitting component. Defaults to ModuleName().
	Module string
	// Level is an external override of the initial level, a level name or a
	// decimal index. Empty or invalid values leave the level at LevelDebug.
	Level string
	// Correlation is queried for every record. Defaults to no correlation.
	Correlation CorrelationSource
	// Output receives one JSON line per record. Defaults to os.Stdout.
	Output io.Writer
	// Clock stamps records. Defaults to time.Now.
	Clock func() time.Time
}

// Logger writes leveled JSON records for one module.
//
// The level may be changed at any time with SetLevel; concurrent readers see
// the change eventually.
type Logger struct {
	module string
	level  atomic.Int64
	cid    CorrelationSource
	out    io.Writer
	now    func() time.Time
}

// New creates a Logger.
func New(opts Options) *Logger {
	opts = opts.withDefaults()

	l := &Logger{
		module: opts.Module,
		cid:    opts.Correlation,
		out:    opts.Output,
		now:    opts.Clock,
	}
	l.level.Store(int64(initialLevel(opts.Level)))

	return l
}

func (o Options) withDefaults() Options {
	if o.Module == "" {
		o.Module = ModuleName()
	}
	if o.Correlation == nil {
		o.Correlation = noCorrelation{}
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

func initialLevel(raw string) Level {
	if raw == "" {
		return LevelDebug
	}
	lvl, err := ParseLevel(raw)
	if err != nil {
		return LevelDebug
	}
	return lvl
}

// Module returns the module name stamped on every record.
func (l *Logger) Module() string {
	return l.module
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel validates v with ResolveLevel and stores it as the new threshold.
// The threshold is unchanged when v is rejected.
func (l *Logger) SetLevel(v any) error {
	lvl, err := ResolveLevel(v)
	if err != nil {
		return err
	}
	l.level.Store(int64(lvl))
	return nil
}

// Log writes msg at level unless level is below the threshold.
//
// level is not validated; unknown levels are written with their number as
// the level name.
func (l *Logger) Log(level Level, msg string) error {
	if level < l.Level() {
		return nil
	}

	cid, ok := l.cid.CurrentCorrelationID()
	if !ok {
		cid = ""
	}

	line, err := FormatRecord(NewRecord(level, l.module, l.now(), cid, msg))
	if err != nil {
		return err
	}

	if _, err := l.out.Write(line); err != nil {
		return err
	}
	recordsTotal.WithLabelValues(levelLabel(level)).Inc()

	return nil
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string) error { return l.Log(LevelDebug, msg) }

// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string) error { return l.Log(LevelInfo, msg) }

// Warn logs msg at LevelWarn.
func (l *Logger) Warn(msg string) error { return l.Log(LevelWarn, msg) }

// Error logs msg at LevelError.
func (l *Logger) Error(msg string) error { return l.Log(LevelError, msg) }

// Fatal logs msg at LevelFatal. It does not exit the process.
func (l *Logger) Fatal(msg string) error { return l.Log(LevelFatal, msg) }
