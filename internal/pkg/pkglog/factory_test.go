package pkglog

import (
	"bytes"
	"context"
	"sync"
	"testing"
)

func TestFactoryLoggersReadContextCorrelation(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(Options{Module: "scoring", Output: &buf, Clock: fixedClock})

	ctx := SetCorrelationID(context.Background(), "req-1")
	if err := f.NewLogger(ctx).Warn("hello"); err != nil {
		t.Fatalf("Warn: %v", err)
	}
	if err := f.NewLogger(context.Background()).Warn("anonymous"); err != nil {
		t.Fatalf("Warn: %v", err)
	}

	recs := decodeLines(t, &buf)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].CorrelationID == nil || *recs[0].CorrelationID != "req-1" {
		t.Fatalf("expected req-1, got %v", recs[0].CorrelationID)
	}
	if recs[1].CorrelationID != nil {
		t.Fatalf("expected null correlation id, got %q", *recs[1].CorrelationID)
	}
	if recs[0].Module != "scoring" {
		t.Fatalf("expected module scoring, got %q", recs[0].Module)
	}
}

func TestFactoryDefaultLevel(t *testing.T) {
	f := NewFactory(Options{Module: "m", Level: "info", Output: &bytes.Buffer{}})
	if got := f.Level(); got != LevelInfo {
		t.Fatalf("expected info, got %v", got)
	}

	before := f.NewLogger(context.Background())

	if err := f.SetLevel("error"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if err := f.SetLevel(42); err == nil {
		t.Fatalf("expected SetLevel(42) to fail")
	}
	if got := f.Level(); got != LevelError {
		t.Fatalf("expected error, got %v", got)
	}

	if got := before.Level(); got != LevelInfo {
		t.Fatalf("expected existing logger to keep info, got %v", got)
	}
	if got := f.NewLogger(context.Background()).Level(); got != LevelError {
		t.Fatalf("expected new logger at error, got %v", got)
	}
}

func TestFactoryConcurrentWritesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(Options{Module: "m", Output: &buf, Clock: fixedClock})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := f.NewLogger(context.Background())
			for j := 0; j < 10; j++ {
				_ = l.Info("line")
			}
		}()
	}
	wg.Wait()

	if recs := decodeLines(t, &buf); len(recs) != 200 {
		t.Fatalf("expected 200 records, got %d", len(recs))
	}
}

func TestContextAttachment(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no logger")
	}

	l := New(Options{Module: "m", Output: &bytes.Buffer{}})
	got, ok := FromContext(WithLogger(context.Background(), l))
	if !ok || got != LevelLogger(l) {
		t.Fatalf("expected attached logger")
	}
}
