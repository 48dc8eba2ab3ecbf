package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/hairjourney/pkg/catalog"
)

func TestKeyListsCategoriesByRank(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := &Key{Out: &buf, Ranks: catalog.RankTable{catalog.CategoryRoutines: 1, catalog.CategoryGoals: 2}}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	r := strings.Index(out, "routines")
	g := strings.Index(out, "goals")
	e := strings.Index(out, "entries")
	if r < 0 || g < 0 || e < 0 || !(r < g && g < e) {
		t.Fatalf("unexpected category order:\n%s", out)
	}
	for _, o := range catalog.AllSortOrders() {
		if !strings.Contains(out, string(o)) {
			t.Errorf("missing sort order %s", o)
		}
	}
}
