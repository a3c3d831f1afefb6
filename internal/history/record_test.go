package history

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// Property: any listing normalizes to a collection sorted non-increasing by
// timestamp, with one record per input entry.
func TestNormalizeSortedNewestFirst(t *testing.T) {
	entryGen := rapid.Custom(func(t *rapid.T) Entry {
		// Mix of stamped and unstamped names to exercise the now-fallback.
		if rapid.Bool().Draw(t, "stamped") {
			year := rapid.IntRange(2000, 2030).Draw(t, "year")
			month := rapid.IntRange(1, 12).Draw(t, "month")
			day := rapid.IntRange(1, 28).Draw(t, "day")
			return Entry{
				Name: fmt.Sprintf("output_%04d%02d%02d_093000.pdf", year, month, day),
				URL:  "/history/x",
			}
		}
		return Entry{Name: rapid.StringMatching(`[a-z]{1,8}\.pdf`).Draw(t, "name"), URL: "/history/x"}
	})

	rapid.Check(t, func(t *rapid.T) {
		l := Listing{
			PDFs:       rapid.SliceOfN(entryGen, 0, 8).Draw(t, "pdfs"),
			Images:     rapid.SliceOfN(entryGen, 0, 8).Draw(t, "images"),
			Histograms: rapid.SliceOfN(entryGen, 0, 8).Draw(t, "histograms"),
		}
		now := time.Now()
		records := Normalize(l, now)

		if want := len(l.PDFs) + len(l.Images) + len(l.Histograms); len(records) != want {
			t.Fatalf("record count: want %d, got %d", want, len(records))
		}
		for i := 1; i < len(records); i++ {
			if records[i].Timestamp.After(records[i-1].Timestamp) {
				t.Fatalf("records %d and %d out of order: %v before %v",
					i-1, i, records[i-1].Timestamp, records[i].Timestamp)
			}
		}
	})
}

func TestNormalizeSinglePDF(t *testing.T) {
	l := Listing{PDFs: []Entry{{Name: "report_20240101_120000.pdf", URL: "/a"}}}
	records := Normalize(l, time.Now())
	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Type != TypePDF {
		t.Errorf("type: want %q, got %q", TypePDF, r.Type)
	}
	if r.ID != "pdf-0" {
		t.Errorf("id: want pdf-0, got %q", r.ID)
	}
	if r.URL != "/a" {
		t.Errorf("url: want /a, got %q", r.URL)
	}
	want := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.Local)
	if !r.Timestamp.Equal(want) {
		t.Errorf("timestamp: want %v, got %v", want, r.Timestamp)
	}
}

func TestNormalizeEmptyListing(t *testing.T) {
	records := Normalize(Listing{}, time.Now())
	if len(records) != 0 {
		t.Fatalf("want empty collection, got %d records", len(records))
	}
}

// Ties keep pdf→image→histogram concatenation order (stable sort).
func TestNormalizeTieStability(t *testing.T) {
	l := Listing{
		PDFs:       []Entry{{Name: "a_20240101_120000.pdf", URL: "/p0"}, {Name: "b_20240101_120000.pdf", URL: "/p1"}},
		Images:     []Entry{{Name: "c_20240101_120000.jpg", URL: "/i0"}},
		Histograms: []Entry{{Name: "d_20240101_120000.png", URL: "/h0"}},
	}
	records := Normalize(l, time.Now())
	wantIDs := []string{"pdf-0", "pdf-1", "img-0", "hist-0"}
	for i, id := range wantIDs {
		if records[i].ID != id {
			t.Errorf("position %d: want %s, got %s", i, id, records[i].ID)
		}
	}
}

func TestNormalizeSyntheticIDsPerCategory(t *testing.T) {
	l := Listing{
		PDFs:       []Entry{{Name: "x_20300101_000000.pdf"}},
		Images:     []Entry{{Name: "y_20200101_000000.jpg"}, {Name: "z_20100101_000000.jpg"}},
		Histograms: []Entry{{Name: "w_20250101_000000.png"}},
	}
	records := Normalize(l, time.Now())
	byID := map[string]Type{}
	for _, r := range records {
		byID[r.ID] = r.Type
	}
	for id, typ := range map[string]Type{
		"pdf-0": TypePDF, "img-0": TypeImage, "img-1": TypeImage, "hist-0": TypeHistogram,
	} {
		if got, ok := byID[id]; !ok || got != typ {
			t.Errorf("id %s: want %s present, got %v", id, typ, got)
		}
	}
	// Newest first regardless of category concatenation order.
	if records[0].ID != "pdf-0" {
		t.Errorf("newest record: want pdf-0 (2030), got %s", records[0].ID)
	}
}
