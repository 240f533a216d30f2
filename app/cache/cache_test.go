package cache

import "testing"

func TestStoreAndGet(t *testing.T) {
	c := New(1024)

	c.Store("a", "alpha", 100)
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit for stored key")
	}
	if got.(string) != "alpha" {
		t.Errorf("got %v, want alpha", got)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats: hits=%d misses=%d, want 1/1", stats.Hits, stats.Misses)
	}
	if stats.TotalSize != 100 {
		t.Errorf("total size: got %d, want 100", stats.TotalSize)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(300)

	c.Store("a", "alpha", 100)
	c.Store("b", "beta", 100)
	c.Store("c", "gamma", 100)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Store("d", "delta", 100)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to survive eviction", key)
		}
	}
	if stats := c.GetStats(); stats.TotalSize > 300 {
		t.Errorf("total size %d exceeds budget", stats.TotalSize)
	}
}

func TestOverwriteReplacesSize(t *testing.T) {
	c := New(1024)

	c.Store("a", "v1", 100)
	c.Store("a", "v2", 200)

	if c.Len() != 1 {
		t.Errorf("len: got %d, want 1", c.Len())
	}
	if stats := c.GetStats(); stats.TotalSize != 200 {
		t.Errorf("total size after overwrite: got %d, want 200", stats.TotalSize)
	}
	got, _ := c.Get("a")
	if got.(string) != "v2" {
		t.Errorf("got %v, want v2", got)
	}
}

func TestOversizeEntryNotCached(t *testing.T) {
	c := New(100)

	c.Store("huge", "x", 101)
	if _, ok := c.Get("huge"); ok {
		t.Error("entry larger than the budget must not be cached")
	}
}

func TestClear(t *testing.T) {
	c := New(1024)

	c.Store("a", "alpha", 100)
	c.Store("b", "beta", 100)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("len after clear: got %d, want 0", c.Len())
	}
	if stats := c.GetStats(); stats.TotalSize != 0 {
		t.Errorf("total size after clear: got %d, want 0", stats.TotalSize)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after clear")
	}
}
