package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreSetGetClear(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", "upstream-token"); err != nil {
		t.Fatalf("set: %v", err)
	}

	token, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if token != "upstream-token" {
		t.Fatalf("expected stored token, got %q", token)
	}

	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Get(ctx, "sid-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// ttl <= 0 disables expiry entirely
	if _, err := store.Get(ctx, "sid-1"); err != nil {
		t.Fatalf("ttl<=0 must disable expiry, got %v", err)
	}

	expiring := NewMemoryStore(time.Nanosecond)
	if err := expiring.Set(ctx, "sid-2", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, err := expiring.Get(ctx, "sid-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestMemoryStoreClearIsIdempotent(t *testing.T) {
	store := NewMemoryStore(0)
	if err := store.Clear(context.Background(), "never-set"); err != nil {
		t.Fatalf("clear of absent session must not fail: %v", err)
	}
}
