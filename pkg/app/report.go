package app

import (
	"context"
	"time"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
)

// SummarySection is one kind's slice of a summary window.
type SummarySection struct {
	Kind   catalog.Category
	Count  int
	Latest *entry.Entry
	// Entries are newest first.
	Entries []*entry.Entry
}

// SummaryResult is a per-kind digest of records created in a window.
type SummaryResult struct {
	Since    time.Time
	Until    time.Time
	Sections []SummarySection
	Total    int
}

// Summary groups records created between since and until by kind. Sections
// follow the category rank order, and records within a section are newest
// first.
func (s *Service) Summary(ctx context.Context, since, until time.Time) (SummaryResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	all, err := s.Entries(ctx)
	if err != nil {
		return SummaryResult{}, err
	}

	window := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if e == nil || e.Created.IsZero() {
			continue
		}
		if e.Created.Before(since) || e.Created.After(until) {
			continue
		}
		window = append(window, e)
	}

	// Newest first, then a stable category sort keeps that order per kind.
	t := newTimeline(window, s.controllerOptions(s.viewDefaults())...)
	if err := t.SetSort(catalog.SortNewest); err != nil {
		return SummaryResult{}, err
	}
	newest, _ := t.Visible()
	t = newTimeline(newest, s.controllerOptions(s.viewDefaults())...)
	if err := t.SetSort(catalog.SortCategory); err != nil {
		return SummaryResult{}, err
	}
	grouped, _ := t.Visible()

	result := SummaryResult{Since: since, Until: until}
	for _, e := range grouped {
		n := len(result.Sections)
		if n == 0 || result.Sections[n-1].Kind != e.Kind {
			result.Sections = append(result.Sections, SummarySection{Kind: e.Kind, Latest: e})
			n++
		}
		sec := &result.Sections[n-1]
		sec.Entries = append(sec.Entries, e)
		sec.Count++
		result.Total++
	}
	return result, nil
}
