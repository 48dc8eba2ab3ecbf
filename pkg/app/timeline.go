package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/logger"
	"tableflip.dev/hairjourney/pkg/store"
)

// OpenOptions picks the initial view state. Empty fields fall back to the
// configured view defaults.
type OpenOptions struct {
	Filter string
	Sort   string
	Search string
	// Since drops records created before it. Zero keeps everything.
	Since time.Time
	// Observer receives every recomputed view, including the ones produced
	// while the initial state is applied.
	Observer func(catalog.View)
}

// Timeline is one open catalog view over the journal. The embedded
// controller owns the view state; Timeline resolves its IDs back to records.
type Timeline struct {
	*catalog.Controller
	byID map[string]*entry.Entry
}

// Open loads the journal and opens a catalog view over it.
func (s *Service) Open(ctx context.Context, opts OpenOptions) (*Timeline, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	all := s.Persistence.ListAll(ctx)
	if !opts.Since.IsZero() {
		all = createdSince(all, opts.Since)
	}

	defaults := s.viewDefaults()
	copts := s.controllerOptions(defaults)
	if opts.Observer != nil {
		copts = append(copts, catalog.WithObserver(opts.Observer))
	}
	t := newTimeline(all, copts...)

	state := catalog.ViewState{
		Filter: firstNonEmpty(opts.Filter, defaults.Filter),
		Search: opts.Search,
	}
	sortName := firstNonEmpty(opts.Sort, defaults.Sort, string(catalog.SortNewest))
	order, err := catalog.ParseSortOrder(sortName)
	if err != nil {
		return nil, err
	}
	state.Sort = order
	if err := t.Restore(state); err != nil {
		return nil, err
	}
	logger.Debug("opened timeline", "items", t.Len(), "filter", state.Filter, "sort", state.Sort)
	return t, nil
}

func newTimeline(entries []*entry.Entry, opts ...catalog.Option) *Timeline {
	byID := make(map[string]*entry.Entry, len(entries))
	kept := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.ID == "" {
			continue
		}
		if _, dup := byID[e.ID]; dup {
			logger.Warn("duplicate record id", "id", e.ID)
			continue
		}
		byID[e.ID] = e
		kept = append(kept, e)
	}
	return &Timeline{
		Controller: catalog.New(entry.Items(kept), opts...),
		byID:       byID,
	}
}

// Restore applies a previously captured view state, for example after the
// journal was reloaded. The filter goes through the category aliases.
func (t *Timeline) Restore(st catalog.ViewState) error {
	if st.Sort != "" {
		if err := t.SetSort(st.Sort); err != nil {
			return err
		}
	}
	t.SetFilter(glyph.FilterForAlias(st.Filter))
	t.SetSearch(st.Search)
	return nil
}

// Visible resolves the current view to records in display order.
func (t *Timeline) Visible() ([]*entry.Entry, catalog.View) {
	view := t.ComputeVisible()
	out := make([]*entry.Entry, 0, view.Count)
	for _, id := range view.IDs {
		if e, ok := t.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, view
}

// Lookup returns the record for id.
func (t *Timeline) Lookup(id string) (*entry.Entry, bool) {
	e, ok := t.byID[id]
	return e, ok
}

func (s *Service) viewDefaults() store.ViewDefaults {
	if s.Config == nil {
		return store.ViewDefaults{}
	}
	return s.Config.View()
}

func (s *Service) controllerOptions(d store.ViewDefaults) []catalog.Option {
	opts := []catalog.Option{catalog.WithLocale(parseLocale(d.Locale))}
	if len(d.Ranks) > 0 {
		ranks := make(catalog.RankTable, len(d.Ranks))
		for k, v := range d.Ranks {
			ranks[catalog.Category(glyph.FilterForAlias(k))] = v
		}
		opts = append(opts, catalog.WithRanks(ranks))
	}
	return opts
}

func parseLocale(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und
	}
	tag, err := language.Parse(raw)
	if err != nil {
		logger.Warn("unknown locale, using root collation", "locale", raw, "err", err)
		return language.Und
	}
	return tag
}

func createdSince(entries []*entry.Entry, since time.Time) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Created.IsZero() || e.Created.Before(since) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
