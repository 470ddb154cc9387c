package pkglog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

type decodedRecord struct {
	Timestamp     string  `json:"timestamp"`
	Level         string  `json:"level"`
	Module        string  `json:"module"`
	CorrelationID *string `json:"correlationId"`
	Message       string  `json:"message"`
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer) *Logger {
	return New(Options{Module: "scoring", Output: buf, Clock: fixedClock})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []decodedRecord {
	t.Helper()

	var out []decodedRecord
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		var rec decodedRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

type failingWriter struct{ err error }

func (w failingWriter) Write(_ []byte) (int, error) { return 0, w.err }

func TestNewDefaults(t *testing.T) {
	l := New(Options{Module: "scoring"})
	if got := l.Level(); got != LevelDebug {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := l.Module(); got != "scoring" {
		t.Fatalf("expected module scoring, got %q", got)
	}
}

func TestNewLevelOverride(t *testing.T) {
	if got := New(Options{Module: "m", Level: "WARN"}).Level(); got != LevelWarn {
		t.Fatalf("expected warn level, got %v", got)
	}
	if got := New(Options{Module: "m", Level: "3"}).Level(); got != LevelError {
		t.Fatalf("expected error level, got %v", got)
	}
	if got := New(Options{Module: "m", Level: "chatty"}).Level(); got != LevelDebug {
		t.Fatalf("expected invalid override to keep debug, got %v", got)
	}
}

func TestLogThreshold(t *testing.T) {
	for threshold := LevelDebug; threshold <= LevelFatal; threshold++ {
		for level := LevelDebug; level <= LevelFatal+1; level++ {
			var buf bytes.Buffer
			l := newTestLogger(&buf)
			if err := l.SetLevel(threshold); err != nil {
				t.Fatalf("SetLevel(%v): %v", threshold, err)
			}

			if err := l.Log(level, "m"); err != nil {
				t.Fatalf("Log: %v", err)
			}

			lines := strings.Count(buf.String(), "\n")
			if level < threshold && lines != 0 {
				t.Fatalf("threshold %v level %v: expected no output, got %q", threshold, level, buf.String())
			}
			if level >= threshold && lines != 1 {
				t.Fatalf("threshold %v level %v: expected one line, got %q", threshold, level, buf.String())
			}
		}
	}
}

func TestLogRecordFields(t *testing.T) {
	var buf bytes.Buffer
	cid := "first"
	l := New(Options{
		Module: "scoring",
		Output: &buf,
		Clock:  fixedClock,
		Correlation: CorrelationFunc(func() (string, bool) {
			return cid, true
		}),
	})

	if err := l.Info("one"); err != nil {
		t.Fatalf("Info: %v", err)
	}
	cid = "second"
	if err := l.Info("two"); err != nil {
		t.Fatalf("Info: %v", err)
	}

	recs := decodeLines(t, &buf)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Timestamp != "2025-06-01T12:00:00.000Z" {
		t.Fatalf("unexpected timestamp %q", recs[0].Timestamp)
	}
	if recs[0].Level != "info" || recs[0].Module != "scoring" || recs[0].Message != "one" {
		t.Fatalf("unexpected record %+v", recs[0])
	}
	if recs[0].CorrelationID == nil || *recs[0].CorrelationID != "first" {
		t.Fatalf("expected correlation id first, got %v", recs[0].CorrelationID)
	}
	if recs[1].CorrelationID == nil || *recs[1].CorrelationID != "second" {
		t.Fatalf("expected correlation id to be read at emit time, got %v", recs[1].CorrelationID)
	}
}

func TestLogUnknownLevelFallsBackToNumber(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	if err := l.Log(Level(9), "beyond fatal"); err != nil {
		t.Fatalf("Log: %v", err)
	}

	recs := decodeLines(t, &buf)
	if len(recs) != 1 || recs[0].Level != "9" {
		t.Fatalf("expected numeric level, got %+v", recs)
	}
}

func TestConvenienceMethods(t *testing.T) {
	cases := []struct {
		call func(l *Logger, msg string) error
		want string
	}{
		{(*Logger).Debug, "debug"},
		{(*Logger).Info, "info"},
		{(*Logger).Warn, "warn"},
		{(*Logger).Error, "error"},
		{(*Logger).Fatal, "fatal"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		l := newTestLogger(&buf)

		if err := tc.call(l, "msg-"+tc.want); err != nil {
			t.Fatalf("%s: %v", tc.want, err)
		}

		recs := decodeLines(t, &buf)
		if len(recs) != 1 {
			t.Fatalf("%s: expected one record, got %d", tc.want, len(recs))
		}
		if recs[0].Level != tc.want || recs[0].Message != "msg-"+tc.want {
			t.Fatalf("%s: unexpected record %+v", tc.want, recs[0])
		}
	}
}

func TestConvenienceMethodsRespectThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	if err := l.SetLevel("error"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	_ = l.Debug("d")
	_ = l.Info("i")
	_ = l.Warn("w")
	_ = l.Error("e")
	_ = l.Fatal("f")

	recs := decodeLines(t, &buf)
	if len(recs) != 2 || recs[0].Level != "error" || recs[1].Level != "fatal" {
		t.Fatalf("expected error and fatal only, got %+v", recs)
	}
}

func TestSetLevelRejectsAndKeepsLevel(t *testing.T) {
	l := New(Options{Module: "m", Output: &bytes.Buffer{}})
	if err := l.SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	for _, bad := range []any{-1, 5, 100, "bogus", "", true, 2.5, struct{}{}} {
		if err := l.SetLevel(bad); err == nil {
			t.Fatalf("expected SetLevel(%v) to fail", bad)
		}
		if got := l.Level(); got != LevelWarn {
			t.Fatalf("SetLevel(%v) changed level to %v", bad, got)
		}
	}
}

func TestLogReturnsWriteError(t *testing.T) {
	boom := errors.New("disk full")
	l := New(Options{Module: "m", Output: failingWriter{err: boom}})

	if err := l.Warn("x"); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestFilteredLogDoesNotWrite(t *testing.T) {
	l := New(Options{Module: "m", Level: "fatal", Output: failingWriter{err: errors.New("unexpected write")}})

	if err := l.Error("x"); err != nil {
		t.Fatalf("expected filtered call to skip the sink, got %v", err)
	}
}
