package cache

import (
	"context"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	store.Set(ctx, "dashboard:u1:7:7", []byte(`{"fixtures":[]}`), time.Minute)

	got, ok := store.Get(ctx, "dashboard:u1:7:7")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != `{"fixtures":[]}` {
		t.Fatalf("unexpected value: %s", got)
	}

	if _, ok := store.Get(ctx, "dashboard:u2:7:7"); ok {
		t.Fatal("expected miss for other key")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "standings:l1:2024", []byte("rows"), 30*time.Second)

	if _, ok := store.Get(ctx, "standings:l1:2024"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(31 * time.Second)
	if _, ok := store.Get(ctx, "standings:l1:2024"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"), 0)
	now = now.Add(24 * time.Hour)

	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatal("expected entry without ttl to survive")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	store.Set(ctx, "dashboard:u1:7:7", []byte("a"), time.Minute)
	store.Set(ctx, "dashboard:u1:3:14", []byte("b"), time.Minute)
	store.Set(ctx, "dashboard:u2:7:7", []byte("c"), time.Minute)

	store.DeletePrefix(ctx, "dashboard:u1:")

	if _, ok := store.Get(ctx, "dashboard:u1:7:7"); ok {
		t.Fatal("expected u1 entry deleted")
	}
	if _, ok := store.Get(ctx, "dashboard:u1:3:14"); ok {
		t.Fatal("expected u1 entry deleted")
	}
	if _, ok := store.Get(ctx, "dashboard:u2:7:7"); !ok {
		t.Fatal("expected u2 entry kept")
	}
}

func TestStore_SetCopiesValue(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	buf := []byte("original")
	store.Set(ctx, "k", buf, time.Minute)
	buf[0] = 'X'

	got, ok := store.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != "original" {
		t.Fatalf("cached value mutated: %s", got)
	}
}
