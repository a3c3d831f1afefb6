// Package history normalizes the device's categorized report listing into a
// single typed, newest-first collection of records.
package history

import (
	"fmt"
	"sort"
	"time"
)

// Type identifies the kind of artifact a record points at.
type Type string

const (
	TypePDF       Type = "pdf"
	TypeImage     Type = "image"
	TypeHistogram Type = "histogram"
)

// Record is a normalized reference to one previously generated artifact.
// Records are immutable once built; a fresh fetch replaces the whole slice.
type Record struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

// Entry is one raw {name, url} pair from the backend listing.
type Entry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Listing is the backend's categorized history response.
type Listing struct {
	PDFs       []Entry `json:"pdfs"`
	Images     []Entry `json:"images"`
	Histograms []Entry `json:"histograms"`
}

// Normalize flattens a listing into one collection sorted descending by
// timestamp. Records within a category get synthetic ids (pdf-0, img-1, …);
// entries without an embedded timestamp fall back to now so the sort stays
// total. The sort is stable: equal timestamps keep pdf→image→histogram
// concatenation order.
func Normalize(l Listing, now time.Time) []Record {
	records := make([]Record, 0, len(l.PDFs)+len(l.Images)+len(l.Histograms))
	for i, e := range l.PDFs {
		records = append(records, Record{
			ID:        fmt.Sprintf("pdf-%d", i),
			Type:      TypePDF,
			Name:      e.Name,
			URL:       e.URL,
			Timestamp: ExtractTimestamp(e.Name, now),
		})
	}
	for i, e := range l.Images {
		records = append(records, Record{
			ID:        fmt.Sprintf("img-%d", i),
			Type:      TypeImage,
			Name:      e.Name,
			URL:       e.URL,
			Timestamp: ExtractTimestamp(e.Name, now),
		})
	}
	for i, e := range l.Histograms {
		records = append(records, Record{
			ID:        fmt.Sprintf("hist-%d", i),
			Type:      TypeHistogram,
			Name:      e.Name,
			URL:       e.URL,
			Timestamp: ExtractTimestamp(e.Name, now),
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records
}
