package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
)

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func at(day int) entry.Timestamp {
	return entry.Timestamp{Time: time.Date(2025, time.March, day, 9, 0, 0, 0, time.UTC)}
}

func TestStoreAndListAllInJournalOrder(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()

	later := &entry.Entry{Kind: catalog.CategoryEntries, Title: "Wash day", Created: at(5)}
	earlier := &entry.Entry{Kind: catalog.CategoryGoals, Title: "Grow hair", Created: at(1)}
	undated := &entry.Entry{Kind: catalog.CategoryRoutines, Title: "Night routine"}
	for _, e := range []*entry.Entry{later, undated, earlier} {
		if err := p.Store(e); err != nil {
			t.Fatalf("store: %v", err)
		}
		if len(e.ID) != 32 || strings.Contains(e.ID, "-") {
			t.Fatalf("expected generated 32-char hex id, got %q", e.ID)
		}
	}

	all := p.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[0].ID != earlier.ID || all[1].ID != later.ID || all[2].ID != undated.ID {
		t.Fatalf("unexpected order: %s, %s, %s", all[0].Title, all[1].Title, all[2].Title)
	}
	if all[0].Schema != entry.CurrentSchema {
		t.Fatalf("schema not set: %q", all[0].Schema)
	}
}

func TestListByKind(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	for _, e := range []*entry.Entry{
		{Kind: catalog.CategoryGoals, Title: "Length", Created: at(2)},
		{Kind: catalog.CategoryEntries, Title: "Wash", Created: at(3)},
		{Kind: "photos", Title: "Side profile", Created: at(4)},
		{Kind: catalog.CategoryGoals, Title: "Less breakage", Created: at(1)},
	} {
		if err := p.Store(e); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	goals := p.List(ctx, catalog.CategoryGoals)
	if len(goals) != 2 || goals[0].Title != "Less breakage" || goals[1].Title != "Length" {
		t.Fatalf("unexpected goals: %+v", goals)
	}
	photos := p.List(ctx, "photos")
	if len(photos) != 1 || photos[0].Kind != "photos" {
		t.Fatalf("unexpected photos: %+v", photos)
	}

	kinds := p.Kinds(ctx)
	want := []catalog.Category{"entries", "goals", "photos"}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestGetAndDelete(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	e := &entry.Entry{
		Kind:     catalog.CategoryGoals,
		Title:    "Retain length",
		Progress: 40,
		Created:  at(7),
	}
	if err := p.Store(e); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := p.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Retain length" || got.Progress != 40 || !got.Created.Equal(e.Created.Time) {
		t.Fatalf("unexpected entry: %+v", got)
	}

	got.Title = "Retain length past shoulders"
	if err := p.Store(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	if all := p.ListAll(ctx); len(all) != 1 || all[0].Title != got.Title {
		t.Fatalf("update should overwrite in place, got %+v", all)
	}

	if err := p.Delete(got); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := p.Delete(got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestStoreRequiresKind(t *testing.T) {
	p := newTestStore(t)
	if err := p.Store(&entry.Entry{Title: "no kind"}); err == nil {
		t.Fatalf("expected error for missing kind")
	}
}

func TestBucketRoundTripsOddKinds(t *testing.T) {
	for _, kind := range []catalog.Category{"goals", "a-b/c", "ÿ"} {
		if got := fromBucket(toBucket(kind)); got != kind {
			t.Fatalf("bucket round trip: %q -> %q", kind, got)
		}
	}
}

func TestRecordKeyLayout(t *testing.T) {
	tests := []struct {
		key  recordKey
		path []string
	}{
		{recordKey{bucket: "676f616c73", day: "2025-03-01", id: "abc"}, []string{"676f616c73", "2025", "03", "01"}},
		{recordKey{bucket: "676f616c73", day: undated, id: "abc"}, []string{"676f616c73", undated}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			pk := tt.key.pathKey()
			if strings.Join(pk.Path, "/") != strings.Join(tt.path, "/") || pk.FileName != tt.key.id {
				t.Fatalf("path = %v/%s", pk.Path, pk.FileName)
			}
			if got := recordKeyFromPath(pk); got != tt.key {
				t.Fatalf("inverse = %+v, want %+v", got, tt.key)
			}
			if got := parseRecordKey(tt.key.String()); got != tt.key {
				t.Fatalf("parse = %+v, want %+v", got, tt.key)
			}
		})
	}
}
