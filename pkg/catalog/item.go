// Package catalog computes which journal items are visible, and in what
// order, for a single open list view. It owns only transient view state:
// the item collection is supplied by the host and never modified.
package catalog

// Category tags an item as one of the journal's record kinds.
type Category string

const (
	// CategoryEntries is a timeline entry (wash day, treatment, observation).
	CategoryEntries Category = "entries"
	// CategoryGoals is a hair goal.
	CategoryGoals Category = "goals"
	// CategoryRoutines is a recurring routine.
	CategoryRoutines Category = "routines"
)

// FilterAll is the filter sentinel that admits every category.
const FilterAll = "all"

// KnownCategories returns the closed set of categories in rank order.
func KnownCategories() []Category {
	return []Category{
		CategoryGoals,
		CategoryEntries,
		CategoryRoutines,
	}
}

// Known reports whether c is one of the built-in categories.
func (c Category) Known() bool {
	for _, candidate := range KnownCategories() {
		if candidate == c {
			return true
		}
	}
	return false
}

// Item is one catalog record as seen by the controller.
type Item struct {
	ID       string
	Category Category
	Title    string
	// Timestamp is epoch seconds; 0 when unknown so date sorts stay total.
	Timestamp int64
}
