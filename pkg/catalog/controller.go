package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ViewState is the transient filter, sort and search selection of one view.
type ViewState struct {
	Filter string
	Sort   SortOrder
	// Search is stored normalized: trimmed and lower-cased.
	Search string
}

// DefaultState is the state every new Controller starts from.
func DefaultState() ViewState {
	return ViewState{
		Filter: FilterAll,
		Sort:   SortNewest,
	}
}

// View is the result of a recomputation: visible item IDs in display order.
type View struct {
	IDs   []string
	Count int
}

// Empty reports whether nothing is visible.
func (v View) Empty() bool {
	return v.Count == 0
}

// Option customises a Controller.
type Option func(*Controller)

// WithRanks overrides the category rank table used by SortCategory.
func WithRanks(r RankTable) Option {
	return func(c *Controller) {
		if len(r) == 0 {
			return
		}
		c.ranks = r.clone()
	}
}

// WithLocale sets the collation locale for title sorts.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) {
		c.collator = collate.New(tag)
	}
}

// WithObserver registers fn to receive the recomputed View after every
// successful state change.
func WithObserver(fn func(View)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// Controller holds the view state for one list view over a fixed item
// collection. It is not safe for concurrent use; hosts feeding it from
// several event sources get last-write-wins by calling it in delivery order.
type Controller struct {
	items    []Item
	state    ViewState
	ranks    RankTable
	collator *collate.Collator
	observer func(View)
}

// New returns a Controller over a private copy of items in the default state.
// The order of items is the original order used to break sort ties.
func New(items []Item, opts ...Option) *Controller {
	c := &Controller{
		items: slices.Clone(items),
		state: DefaultState(),
		ranks: DefaultRanks.clone(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.collator == nil {
		c.collator = collate.New(language.Und)
	}
	return c
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Len returns the size of the full collection.
func (c *Controller) Len() int {
	return len(c.items)
}

// SetFilter selects a single category, or FilterAll. The value is compared
// exactly; unknown categories, blank text included, are accepted and match
// nothing.
func (c *Controller) SetFilter(category string) {
	c.state.Filter = category
	c.emit()
}

// SetSearch sets the title search text. Matching is a case-insensitive
// literal substring test; an empty string clears the constraint.
func (c *Controller) SetSearch(text string) {
	c.state.Search = normalizeSearch(text)
	c.emit()
}

// SetSort changes the sort order. An unsupported order returns
// ErrInvalidSortOrder and leaves the state untouched.
func (c *Controller) SetSort(order SortOrder) error {
	if !order.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidSortOrder, string(order))
	}
	c.state.Sort = order
	c.emit()
	return nil
}

// ComputeVisible returns the visible IDs for the current state. It has no
// side effects and returns equal results for equal state.
func (c *Controller) ComputeVisible() View {
	visible := make([]int, 0, len(c.items))
	for i := range c.items {
		if c.matches(&c.items[i]) {
			visible = append(visible, i)
		}
	}

	less := c.comparator()
	slices.SortStableFunc(visible, func(a, b int) int {
		return less(&c.items[a], &c.items[b])
	})

	ids := make([]string, len(visible))
	for i, idx := range visible {
		ids[i] = c.items[idx].ID
	}
	return View{IDs: ids, Count: len(ids)}
}

func (c *Controller) emit() {
	if c.observer == nil {
		return
	}
	c.observer(c.ComputeVisible())
}

func (c *Controller) matches(it *Item) bool {
	if c.state.Filter != FilterAll && string(it.Category) != c.state.Filter {
		return false
	}
	if c.state.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), c.state.Search)
}

// comparator returns the primary-key comparison for the active sort. Ties
// fall through to the stable sort, which keeps original order.
func (c *Controller) comparator() func(a, b *Item) int {
	switch c.state.Sort {
	case SortOldest:
		return func(a, b *Item) int {
			return cmp.Compare(a.Timestamp, b.Timestamp)
		}
	case SortTitleAsc:
		return func(a, b *Item) int {
			return c.collator.CompareString(a.Title, b.Title)
		}
	case SortTitleDesc:
		return func(a, b *Item) int {
			return c.collator.CompareString(b.Title, a.Title)
		}
	case SortCategory:
		return func(a, b *Item) int {
			return cmp.Compare(c.ranks.Rank(a.Category), c.ranks.Rank(b.Category))
		}
	default:
		return func(a, b *Item) int {
			return cmp.Compare(b.Timestamp, a.Timestamp)
		}
	}
}

func normalizeSearch(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
