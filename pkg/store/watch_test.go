package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
)

func TestPersistenceWatchEmitsKindChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	e := entry.New(catalog.CategoryRoutines, "Weekly deep condition")
	if err := p.Store(e); err != nil {
		t.Fatalf("store entry: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				continue
			}
			if evt.Kind != catalog.CategoryRoutines {
				t.Fatalf("expected kind routines, got %q", evt.Kind)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for kind change event")
		}
	}
}

func TestCoalescerDeliversDistinctEvents(t *testing.T) {
	got := make(chan Event, 8)
	c := newCoalescer(20*time.Millisecond, func(ev Event) { got <- ev })
	defer c.Stop()

	for i := 0; i < 5; i++ {
		c.Add(Event{Type: EventKindChanged, Kind: catalog.CategoryGoals})
	}
	c.Add(Event{Type: EventInvalidated})

	time.Sleep(100 * time.Millisecond)
	if n := len(got); n != 2 {
		t.Fatalf("expected 2 coalesced events, got %d", n)
	}
}

func TestCoalescerStopDiscards(t *testing.T) {
	got := make(chan Event, 8)
	c := newCoalescer(20*time.Millisecond, func(ev Event) { got <- ev })
	c.Add(Event{Type: EventInvalidated})
	c.Stop()
	c.Add(Event{Type: EventInvalidated})

	time.Sleep(60 * time.Millisecond)
	if n := len(got); n != 0 {
		t.Fatalf("expected nothing after Stop, got %d", n)
	}
}

func TestKindForPath(t *testing.T) {
	p := &persistence{basePath: "/data"}
	if kind, ok := p.kindForPath("/data/" + toBucket("goals") + "/2025/03/01/abc"); !ok || kind != "goals" {
		t.Fatalf("kindForPath = %q, %v", kind, ok)
	}
	if _, ok := p.kindForPath("/data"); ok {
		t.Fatalf("base path should not map to a kind")
	}
	if _, ok := p.kindForPath("/data/.DS_Store"); ok {
		t.Fatalf("dot files should not map to a kind")
	}
}
