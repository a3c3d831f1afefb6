// Package view holds the pure UI state machines for the history browser:
// the category filter with its derived visible subset, and the document
// preview controller with its two-tier PDF rendering strategy.
package view

import "github.com/jakditstudio/coloGAMA/internal/history"

// Filter selects which record categories are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPDF       Filter = "pdf"
	FilterImage     Filter = "image"
	FilterHistogram Filter = "histogram"
)

// Filters lists the cycle order used by the UI.
var Filters = []Filter{FilterAll, FilterPDF, FilterImage, FilterHistogram}

// State tracks the active filter and the record selected for preview.
// The visible subset is always derived, never stored, so it cannot diverge
// from the collection.
type State struct {
	filter   Filter
	selected *history.Record
}

// NewState returns a State with the default "all" filter and no selection.
func NewState() *State {
	return &State{filter: FilterAll}
}

// Filter returns the active filter.
func (s *State) Filter() Filter { return s.filter }

// SetFilter sets the active filter and clears any preview selection.
func (s *State) SetFilter(f Filter) {
	s.filter = f
	s.selected = nil
}

// CycleFilter advances to the next filter in display order, clearing the
// selection like any filter change.
func (s *State) CycleFilter() {
	for i, f := range Filters {
		if f == s.filter {
			s.SetFilter(Filters[(i+1)%len(Filters)])
			return
		}
	}
	s.SetFilter(FilterAll)
}

// Select marks a record as the preview target. Selecting a record replaces
// any prior selection.
func (s *State) Select(r history.Record) {
	rc := r
	s.selected = &rc
}

// ClearSelection drops the preview target.
func (s *State) ClearSelection() { s.selected = nil }

// Selected returns the current preview target, or nil.
func (s *State) Selected() *history.Record { return s.selected }

// Visible derives the filtered subsequence of records, preserving order.
// The "all" filter returns records unchanged.
func (s *State) Visible(records []history.Record) []history.Record {
	if s.filter == FilterAll {
		return records
	}
	var out []history.Record
	for _, r := range records {
		if Filter(r.Type) == s.filter {
			out = append(out, r)
		}
	}
	return out
}
