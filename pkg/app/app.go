package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/logger"
	"tableflip.dev/hairjourney/pkg/store"
)

// Service provides high-level operations for journal records.
// It wraps persistence and entry transformations so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	// Config supplies view defaults. Nil means built-in defaults.
	Config store.Config
}

var errNoPersistence = errors.New("app: no persistence configured")

// AddOptions carries the optional, kind-specific fields of a new record.
type AddOptions struct {
	Notes     string
	On        *time.Time
	Rating    int
	Progress  int
	Target    *time.Time
	Frequency string
	Products  []string
}

// Entries lists every record in journal order.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.ListAll(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Add creates and stores a new record.
func (s *Service) Add(ctx context.Context, kind catalog.Category, title string, opts AddOptions) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e := entry.New(kind, title)
	e.Notes = strings.TrimSpace(opts.Notes)
	if opts.On != nil {
		e.Created = entry.Timestamp{Time: *opts.On}
	}
	switch kind {
	case catalog.CategoryEntries:
		e.Rating = opts.Rating
	case catalog.CategoryGoals:
		e.Progress = opts.Progress
		if opts.Target != nil {
			e.Target = &entry.Timestamp{Time: *opts.Target}
		}
	case catalog.CategoryRoutines:
		e.Frequency = strings.TrimSpace(opts.Frequency)
		e.Products = cleanProducts(opts.Products)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := s.Persistence.Store(e); err != nil {
		return nil, err
	}
	logger.Info("added record", "id", e.ID, "kind", e.Kind)
	return e, nil
}

// Edit replaces the title of the record with the given id.
func (s *Service) Edit(ctx context.Context, id string, title string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e, err := s.Persistence.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Title = strings.TrimSpace(title)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.Updated = entry.Now()
	if err := s.Persistence.Store(e); err != nil {
		return nil, err
	}
	return e, nil
}

// SetProgress updates a goal's percent complete.
func (s *Service) SetProgress(ctx context.Context, id string, progress int) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e, err := s.Persistence.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Kind != catalog.CategoryGoals {
		return nil, fmt.Errorf("app: %s is a %s, not a goal", id, e.Kind)
	}
	e.Progress = progress
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.Updated = entry.Now()
	if err := s.Persistence.Store(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Remove deletes a record permanently.
func (s *Service) Remove(ctx context.Context, id string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e, err := s.Persistence.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Delete(e); err != nil {
		return nil, err
	}
	logger.Info("removed record", "id", e.ID, "kind", e.Kind)
	return e, nil
}

func cleanProducts(in []string) []string {
	var out []string
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
