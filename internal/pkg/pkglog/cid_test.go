package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelationID(ctx); got != "[invalid_chain_id]" {
		t.Fatalf("expected invalid chain id, got %q", got)
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestLookupCorrelationID(t *testing.T) {
	if _, ok := LookupCorrelationID(context.Background()); ok {
		t.Fatalf("expected no correlation id")
	}
	if _, ok := LookupCorrelationID(SetCorrelationID(context.Background(), "")); ok {
		t.Fatalf("expected empty correlation id to be absent")
	}

	cid, ok := LookupCorrelationID(SetCorrelationID(context.Background(), "cid-1"))
	if !ok || cid != "cid-1" {
		t.Fatalf("expected cid-1, got %q (ok=%v)", cid, ok)
	}
}

func TestCorrelationFuncIsQueriedEachTime(t *testing.T) {
	calls := 0
	src := CorrelationFunc(func() (string, bool) {
		calls++
		return "cid", true
	})

	src.CurrentCorrelationID()
	src.CurrentCorrelationID()

	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
