package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func sampleItems() []Item {
	return []Item{
		{ID: "1", Category: CategoryGoals, Title: "Grow Hair", Timestamp: 100},
		{ID: "2", Category: CategoryEntries, Title: "Wash Day", Timestamp: 200},
		{ID: "3", Category: CategoryGoals, Title: "Avoid Breakage", Timestamp: 150},
	}
}

func mixedItems() []Item {
	return []Item{
		{ID: "a", Category: CategoryRoutines, Title: "Weekly deep condition", Timestamp: 300},
		{ID: "b", Category: CategoryEntries, Title: "wash day (co-wash)", Timestamp: 200},
		{ID: "c", Category: CategoryGoals, Title: "Reach waist length", Timestamp: 200},
		{ID: "d", Category: "photos", Title: "Progress shot", Timestamp: 50},
		{ID: "e", Category: CategoryEntries, Title: "Protein treatment", Timestamp: 0},
		{ID: "f", Category: CategoryGoals, Title: "Reach waist length", Timestamp: 400},
		{ID: "g", Category: "photos", Title: "Braid out", Timestamp: 10},
		{ID: "h", Category: CategoryRoutines, Title: "Night routine [satin]", Timestamp: 200},
	}
}

func TestScenarioFromJournal(t *testing.T) {
	c := New(sampleItems())

	c.SetFilter("goals")
	if err := c.SetSort(SortOldest); err != nil {
		t.Fatalf("set sort: %v", err)
	}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"1", "3"}) {
		t.Fatalf("goals in original order: got %v", got)
	}

	if err := c.SetSort(SortTitleAsc); err != nil {
		t.Fatalf("set sort: %v", err)
	}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"3", "1"}) {
		t.Fatalf("title-asc: got %v", got)
	}

	if err := c.SetSort(SortNewest); err != nil {
		t.Fatalf("set sort: %v", err)
	}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"3", "1"}) {
		t.Fatalf("date-desc: got %v", got)
	}

	c.SetFilter(FilterAll)
	c.SetSearch("wash")
	v := c.ComputeVisible()
	if !slices.Equal(v.IDs, []string{"2"}) || v.Count != 1 {
		t.Fatalf("search wash: got %v (count %d)", v.IDs, v.Count)
	}
}

func TestDefaultState(t *testing.T) {
	c := New(sampleItems())
	st := c.State()
	if st.Filter != FilterAll || st.Sort != SortNewest || st.Search != "" {
		t.Fatalf("unexpected default state: %+v", st)
	}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"2", "3", "1"}) {
		t.Fatalf("default order: got %v", got)
	}
}

func TestEmptyCollection(t *testing.T) {
	for _, order := range AllSortOrders() {
		c := New(nil)
		c.SetFilter("goals")
		c.SetSearch("anything")
		if err := c.SetSort(order); err != nil {
			t.Fatalf("%s: %v", order, err)
		}
		v := c.ComputeVisible()
		if v.Count != 0 || len(v.IDs) != 0 || !v.Empty() {
			t.Fatalf("%s: expected empty view, got %+v", order, v)
		}
	}
}

func TestFilterUnknownCategoryMatchesNothing(t *testing.T) {
	c := New(mixedItems())
	c.SetFilter("not-loaded-yet")
	if v := c.ComputeVisible(); v.Count != 0 {
		t.Fatalf("expected no matches, got %v", v.IDs)
	}
	c.SetFilter("photos")
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"d", "g"}) {
		t.Fatalf("open category filter: got %v", got)
	}
	c.SetFilter("  ")
	if st, v := c.State(), c.ComputeVisible(); st.Filter != "  " || v.Count != 0 {
		t.Fatalf("blank filter is kept as given and matches nothing, got %q with %v", st.Filter, v.IDs)
	}
	c.SetFilter(" goals")
	if v := c.ComputeVisible(); v.Count != 0 {
		t.Fatalf("filter is not trimmed, got %v", v.IDs)
	}
}

func TestFilterAndSearchProperties(t *testing.T) {
	items := mixedItems()
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	filters := []string{FilterAll, "entries", "goals", "routines", "photos", "nope"}
	searches := []string{"", "wash", "REACH", "  day ", "[satin]", "(co-", ".*", "zzz"}

	for _, f := range filters {
		for _, s := range searches {
			for _, order := range AllSortOrders() {
				t.Run(fmt.Sprintf("%s/%s/%s", f, s, order), func(t *testing.T) {
					c := New(items)
					c.SetFilter(f)
					c.SetSearch(s)
					if err := c.SetSort(order); err != nil {
						t.Fatal(err)
					}
					first := c.ComputeVisible()
					second := c.ComputeVisible()
					if !slices.Equal(first.IDs, second.IDs) || first.Count != second.Count {
						t.Fatalf("not idempotent: %v vs %v", first.IDs, second.IDs)
					}
					if first.Count != len(first.IDs) {
						t.Fatalf("count %d does not match ids %v", first.Count, first.IDs)
					}
					needle := strings.ToLower(strings.TrimSpace(s))
					want := 0
					for _, it := range items {
						if (f == FilterAll || string(it.Category) == f) &&
							strings.Contains(strings.ToLower(it.Title), needle) {
							want++
						}
					}
					if first.Count != want {
						t.Fatalf("expected %d visible, got %d (%v)", want, first.Count, first.IDs)
					}
					for _, id := range first.IDs {
						it := byID[id]
						if f != FilterAll && string(it.Category) != f {
							t.Fatalf("item %s has category %s under filter %s", id, it.Category, f)
						}
						if !strings.Contains(strings.ToLower(it.Title), needle) {
							t.Fatalf("item %s title %q does not contain %q", id, it.Title, needle)
						}
					}
				})
			}
		}
	}
}

func TestSearchIsLiteral(t *testing.T) {
	c := New(mixedItems())
	c.SetSearch("[satin]")
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"h"}) {
		t.Fatalf("bracket search: got %v", got)
	}
	c.SetSearch(".*")
	if v := c.ComputeVisible(); v.Count != 0 {
		t.Fatalf("pattern text must not match as a regexp, got %v", v.IDs)
	}
	c.SetSearch("(")
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"b"}) {
		t.Fatalf("unbalanced paren search: got %v", got)
	}
	if c.State().Search != "(" {
		t.Fatalf("search should be stored normalized, got %q", c.State().Search)
	}
}

func TestSearchNormalizes(t *testing.T) {
	c := New(sampleItems())
	c.SetSearch("   WASH  ")
	if got := c.State().Search; got != "wash" {
		t.Fatalf("expected normalized search, got %q", got)
	}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"2"}) {
		t.Fatalf("got %v", got)
	}
	c.SetSearch("")
	if v := c.ComputeVisible(); v.Count != 3 {
		t.Fatalf("empty search should admit all, got %v", v.IDs)
	}
}

func TestDateSortsAreOrderedAndStable(t *testing.T) {
	items := mixedItems()
	ts := make(map[string]int64, len(items))
	for _, it := range items {
		ts[it.ID] = it.Timestamp
	}

	c := New(items)
	got := c.ComputeVisible().IDs
	for i := 1; i < len(got); i++ {
		if ts[got[i-1]] < ts[got[i]] {
			t.Fatalf("newest-first violated at %d: %v", i, got)
		}
	}
	// b, c and h share timestamp 200 and must keep input order.
	if want := []string{"f", "a", "b", "c", "h", "d", "g", "e"}; !slices.Equal(got, want) {
		t.Fatalf("newest-first: got %v want %v", got, want)
	}

	if err := c.SetSort(SortOldest); err != nil {
		t.Fatal(err)
	}
	if want := []string{"e", "g", "d", "b", "c", "h", "a", "f"}; !slices.Equal(c.ComputeVisible().IDs, want) {
		t.Fatalf("oldest-first: got %v want %v", c.ComputeVisible().IDs, want)
	}
}

func TestTitleSorts(t *testing.T) {
	items := mixedItems()
	titles := make(map[string]string, len(items))
	for _, it := range items {
		titles[it.ID] = it.Title
	}
	col := collate.New(language.Und)

	c := New(items)
	if err := c.SetSort(SortTitleAsc); err != nil {
		t.Fatal(err)
	}
	asc := c.ComputeVisible().IDs
	for i := 1; i < len(asc); i++ {
		if col.CompareString(titles[asc[i-1]], titles[asc[i]]) > 0 {
			t.Fatalf("title-asc violated at %d: %v", i, asc)
		}
	}
	// c and f have the same title; input order wins both ways.
	if want := []string{"g", "h", "d", "e", "c", "f", "b", "a"}; !slices.Equal(asc, want) {
		t.Fatalf("title-asc: got %v want %v", asc, want)
	}

	if err := c.SetSort(SortTitleDesc); err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c", "f", "e", "d", "h", "g"}; !slices.Equal(c.ComputeVisible().IDs, want) {
		t.Fatalf("title-desc: got %v want %v", c.ComputeVisible().IDs, want)
	}
}

func TestTitleSortIsLocaleAware(t *testing.T) {
	items := []Item{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "ábside"},
		{ID: "4", Title: "apple"},
	}
	c := New(items, WithLocale(language.English))
	if err := c.SetSort(SortTitleAsc); err != nil {
		t.Fatal(err)
	}
	got := c.ComputeVisible().IDs
	// Byte order would put "Apple" first and "ábside" last.
	if got[len(got)-1] != "1" {
		t.Fatalf("expected banana last, got %v", got)
	}
	if slices.Index(got, "3") > slices.Index(got, "1") {
		t.Fatalf("accented title should sort with plain a's, got %v", got)
	}
}

func TestCategorySort(t *testing.T) {
	c := New(mixedItems())
	if err := c.SetSort(SortCategory); err != nil {
		t.Fatal(err)
	}
	want := []string{"c", "f", "b", "e", "a", "h", "d", "g"}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, want) {
		t.Fatalf("category: got %v want %v", got, want)
	}
}

func TestCategorySortCustomRanks(t *testing.T) {
	c := New(mixedItems(), WithRanks(RankTable{
		"photos":         0,
		CategoryRoutines: 1,
	}))
	if err := c.SetSort(SortCategory); err != nil {
		t.Fatal(err)
	}
	// entries and goals are unranked under this table and keep input order.
	want := []string{"d", "g", "a", "h", "b", "c", "e", "f"}
	if got := c.ComputeVisible().IDs; !slices.Equal(got, want) {
		t.Fatalf("custom ranks: got %v want %v", got, want)
	}
}

func TestRankTable(t *testing.T) {
	if got := DefaultRanks.Rank(CategoryGoals); got != 1 {
		t.Fatalf("goals rank = %d", got)
	}
	if got := DefaultRanks.Rank("photos"); got != Unranked {
		t.Fatalf("unknown category rank = %d", got)
	}
	for _, c := range KnownCategories() {
		if DefaultRanks.Rank(c) >= Unranked {
			t.Fatalf("%s should rank before Unranked", c)
		}
	}
}

func TestSetSortInvalidLeavesStateUnchanged(t *testing.T) {
	c := New(mixedItems())
	if err := c.SetSort(SortTitleAsc); err != nil {
		t.Fatal(err)
	}
	before := c.ComputeVisible()

	err := c.SetSort("not-a-real-order")
	if !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("expected ErrInvalidSortOrder, got %v", err)
	}
	if c.State().Sort != SortTitleAsc {
		t.Fatalf("sort changed to %q", c.State().Sort)
	}
	after := c.ComputeVisible()
	if !slices.Equal(before.IDs, after.IDs) {
		t.Fatalf("ordering changed after failed SetSort: %v vs %v", before.IDs, after.IDs)
	}

	// Aliases are a parsing concern and are not accepted by SetSort.
	if err := c.SetSort("newest"); !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("expected alias to be rejected, got %v", err)
	}
}

func TestObserverReceivesRecomputedView(t *testing.T) {
	var seen []View
	c := New(sampleItems(), WithObserver(func(v View) {
		seen = append(seen, v)
	}))

	c.SetFilter("goals")
	c.SetSearch("grow")
	if err := c.SetSort(SortTitleDesc); err != nil {
		t.Fatal(err)
	}
	_ = c.SetSort("bogus")

	if len(seen) != 3 {
		t.Fatalf("expected 3 emissions, got %d", len(seen))
	}
	if !slices.Equal(seen[0].IDs, []string{"3", "1"}) {
		t.Fatalf("after filter: %v", seen[0].IDs)
	}
	if !slices.Equal(seen[2].IDs, []string{"1"}) {
		t.Fatalf("after sort: %v", seen[2].IDs)
	}
}

func TestInputCollectionIsNotMutated(t *testing.T) {
	items := mixedItems()
	original := slices.Clone(items)
	c := New(items)
	for _, order := range AllSortOrders() {
		if err := c.SetSort(order); err != nil {
			t.Fatal(err)
		}
		_ = c.ComputeVisible()
	}
	if !slices.Equal(items, original) {
		t.Fatalf("input slice was modified")
	}

	// Mutating the caller's slice afterwards does not leak into the view.
	items[0].Title = "changed"
	c.SetSearch("weekly")
	if got := c.ComputeVisible().IDs; !slices.Equal(got, []string{"a"}) {
		t.Fatalf("controller should hold its own copy, got %v", got)
	}
	if c.Len() != len(original) {
		t.Fatalf("Len = %d", c.Len())
	}
}

func TestControllersAreIndependent(t *testing.T) {
	t.Parallel()
	a := New(sampleItems())
	b := New(sampleItems())
	a.SetFilter("entries")
	if b.State().Filter != FilterAll {
		t.Fatalf("state leaked between controllers")
	}
	if a.ComputeVisible().Count != 1 || b.ComputeVisible().Count != 3 {
		t.Fatalf("unexpected counts")
	}
}
