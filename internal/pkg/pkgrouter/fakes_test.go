package pkgrouter

import (
	"context"
	"errors"
	"sync"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
)

type logCall struct {
	level string
	msg   string
}

type fakeLogger struct {
	mu    sync.Mutex
	calls []logCall
	err   error
}

func (l *fakeLogger) record(level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, logCall{level: level, msg: msg})
	return l.err
}

func (l *fakeLogger) Debug(msg string) error { return l.record("debug", msg) }
func (l *fakeLogger) Info(msg string) error  { return l.record("info", msg) }
func (l *fakeLogger) Warn(msg string) error  { return l.record("warn", msg) }
func (l *fakeLogger) Error(msg string) error { return l.record("error", msg) }
func (l *fakeLogger) Fatal(msg string) error { return l.record("fatal", msg) }

func (l *fakeLogger) snapshot() []logCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logCall(nil), l.calls...)
}

type fakeFactory struct {
	mu      sync.Mutex
	created int
	logger  *fakeLogger
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{logger: &fakeLogger{}}
}

func (f *fakeFactory) NewRequestLogger(_ context.Context) pkglog.LevelLogger {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	return f.logger
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

var errSinkDown = errors.New("sink down")
