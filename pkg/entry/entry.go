// Package entry defines the persisted hair-journey records.
package entry

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/hairjourney/pkg/catalog"
)

// CurrentSchema is written to every record on store.
const CurrentSchema = "v1"

// Entry is one persisted record: a timeline entry, a goal, or a routine.
// Kind-specific fields are left zero on other kinds.
type Entry struct {
	Schema  string           `json:"schema,omitempty"`
	ID      string           `json:"id,omitempty"`
	Kind    catalog.Category `json:"kind"`
	Title   string           `json:"title"`
	Notes   string           `json:"notes,omitempty"`
	Created Timestamp        `json:"created"`
	Updated Timestamp        `json:"updated,omitempty"`

	// Rating is a 1-5 hair day score for timeline entries; 0 means unrated.
	Rating int `json:"rating,omitempty"`

	// Progress is percent complete for goals.
	Progress int        `json:"progress,omitempty"`
	Target   *Timestamp `json:"target,omitempty"`

	// Frequency is free text for routines, e.g. "weekly" or "every wash day".
	Frequency string   `json:"frequency,omitempty"`
	Products  []string `json:"products,omitempty"`
}

// ErrTitleRequired is returned by Validate for blank titles.
var ErrTitleRequired = errors.New("entry: title required")

// New returns an entry of the given kind created now.
func New(kind catalog.Category, title string) *Entry {
	return &Entry{
		Schema:  CurrentSchema,
		Kind:    kind,
		Title:   strings.TrimSpace(title),
		Created: Now(),
	}
}

// Item projects the entry into the catalog's view of it.
func (e *Entry) Item() catalog.Item {
	return catalog.Item{
		ID:        e.ID,
		Category:  e.Kind,
		Title:     e.Title,
		Timestamp: e.Created.Unix(),
	}
}

// Items projects entries in order, skipping nils.
func Items(entries []*Entry) []catalog.Item {
	items := make([]catalog.Item, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		items = append(items, e.Item())
	}
	return items
}

// Validate checks the fields that the CLI and TUI accept from users.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrTitleRequired
	}
	if e.Kind == "" {
		return errors.New("entry: kind required")
	}
	if e.Rating < 0 || e.Rating > 5 {
		return fmt.Errorf("entry: rating %d out of range 0-5", e.Rating)
	}
	if e.Progress < 0 || e.Progress > 100 {
		return fmt.Errorf("entry: progress %d out of range 0-100", e.Progress)
	}
	return nil
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Target != nil {
		t := *e.Target
		cp.Target = &t
	}
	cp.Products = append([]string(nil), e.Products...)
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s (%s)", e.Kind, e.Title, e.Created.Date())
}
