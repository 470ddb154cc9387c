package app

import (
	"io"
	"testing"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"
)

func validSettings() settings {
	return settings{
		Address:   ":8080",
		Generator: "uuid",
		RPS:       50,
		Burst:     100,
		LogAPI:    true,
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*settings) {}},
		{name: "snowflake", mutate: func(s *settings) { s.Generator = "snowflake" }},
		{name: "empty generator", mutate: func(s *settings) { s.Generator = "" }},
		{name: "host and port", mutate: func(s *settings) { s.Address = "127.0.0.1:9000" }},
		{name: "missing address", mutate: func(s *settings) { s.Address = "" }, wantErr: true},
		{name: "no port", mutate: func(s *settings) { s.Address = "localhost" }, wantErr: true},
		{name: "bad port", mutate: func(s *settings) { s.Address = ":http2" }, wantErr: true},
		{name: "port too large", mutate: func(s *settings) { s.Address = ":70000" }, wantErr: true},
		{name: "unknown generator", mutate: func(s *settings) { s.Generator = "ulid" }, wantErr: true},
		{name: "negative rps", mutate: func(s *settings) { s.RPS = -1 }, wantErr: true},
		{name: "negative burst", mutate: func(s *settings) { s.Burst = -1 }, wantErr: true},
		{name: "invalid log level is not fatal", mutate: func(s *settings) { s.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyLogLevel(t *testing.T) {
	a := &App{
		module:  "scoring",
		loggers: pkglog.NewFactory(pkglog.Options{Module: "scoring", Output: io.Discard}),
	}

	a.applyLogLevel("WARN")
	if got := a.loggers.Level(); got != pkglog.LevelWarn {
		t.Fatalf("level: got %v want warn", got)
	}

	a.applyLogLevel("3")
	if got := a.loggers.Level(); got != pkglog.LevelError {
		t.Fatalf("level: got %v want error", got)
	}

	a.applyLogLevel("verbose")
	if got := a.loggers.Level(); got != pkglog.LevelError {
		t.Fatalf("invalid value changed level to %v", got)
	}

	a.applyLogLevel("9")
	if got := a.loggers.Level(); got != pkglog.LevelError {
		t.Fatalf("out of range value changed level to %v", got)
	}

	a.applyLogLevel("")
	if got := a.loggers.Level(); got != pkglog.LevelDebug {
		t.Fatalf("empty value: got %v want debug", got)
	}
}
