package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SortOrder selects how the visible set is ordered.
type SortOrder string

const (
	// SortNewest orders by timestamp, newest first. This is the default.
	SortNewest SortOrder = "date-desc"
	// SortOldest orders by timestamp, oldest first.
	SortOldest SortOrder = "date-asc"
	// SortTitleAsc orders by title using locale collation.
	SortTitleAsc SortOrder = "title-asc"
	// SortTitleDesc orders by title using locale collation, reversed.
	SortTitleDesc SortOrder = "title-desc"
	// SortCategory groups items by category rank.
	SortCategory SortOrder = "category"
)

// ErrInvalidSortOrder is returned for any sort order outside AllSortOrders.
var ErrInvalidSortOrder = errors.New("catalog: invalid sort order")

// AllSortOrders returns the supported sort orders.
func AllSortOrders() []SortOrder {
	return []SortOrder{
		SortNewest,
		SortOldest,
		SortTitleAsc,
		SortTitleDesc,
		SortCategory,
	}
}

// Valid reports whether o is a supported sort order.
func (o SortOrder) Valid() bool {
	for _, candidate := range AllSortOrders() {
		if candidate == o {
			return true
		}
	}
	return false
}

var sortAliases = map[string]SortOrder{
	"newest":  SortNewest,
	"oldest":  SortOldest,
	"az":      SortTitleAsc,
	"a-z":     SortTitleAsc,
	"za":      SortTitleDesc,
	"z-a":     SortTitleDesc,
	"grouped": SortCategory,
}

// ParseSortOrder converts user input to a SortOrder. Canonical names and the
// aliases newest, oldest, az, za and grouped are accepted.
func ParseSortOrder(raw string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(raw)))
	if o.Valid() {
		return o, nil
	}
	if alias, ok := sortAliases[string(o)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidSortOrder, raw)
}

// Unranked is the rank given to categories missing from a RankTable. It is
// greater than any rank a table may hold.
const Unranked = math.MaxInt

// RankTable maps categories to their position in category-grouped order.
// Lower ranks sort first.
type RankTable map[Category]int

// DefaultRanks puts goals first, then entries, then routines.
var DefaultRanks = RankTable{
	CategoryGoals:    1,
	CategoryEntries:  2,
	CategoryRoutines: 3,
}

// Rank returns the rank for c, or Unranked.
func (r RankTable) Rank(c Category) int {
	if rank, ok := r[c]; ok && rank < Unranked {
		return rank
	}
	return Unranked
}

func (r RankTable) clone() RankTable {
	out := make(RankTable, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
