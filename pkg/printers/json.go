package printers

import (
	"encoding/json"
	"io"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
)

type jsonView struct {
	Filter  string         `json:"filter"`
	Sort    string         `json:"sort"`
	Search  string         `json:"search,omitempty"`
	Count   int            `json:"count"`
	Entries []*entry.Entry `json:"entries"`
}

// JSON writes the view state and visible entries as one indented document.
func JSON(w io.Writer, state catalog.ViewState, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonView{
		Filter:  state.Filter,
		Sort:    string(state.Sort),
		Search:  state.Search,
		Count:   len(entries),
		Entries: entries,
	})
}
