package view

import (
	"testing"

	"github.com/jakditstudio/coloGAMA/internal/history"
)

var (
	pdfRecord = history.Record{ID: "pdf-0", Type: history.TypePDF, Name: "r.pdf"}
	imgRecord = history.Record{ID: "img-0", Type: history.TypeImage, Name: "c.jpg"}
)

func TestOpenImageRecord(t *testing.T) {
	p := NewPreview()
	p.Open(imgRecord)
	if p.Mode() != PreviewingImage {
		t.Fatalf("want PreviewingImage, got %v", p.Mode())
	}
}

func TestOpenPdfStartsPrimaryAtPageOne(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	if p.Mode() != PreviewingPdfPrimary {
		t.Fatalf("want PreviewingPdfPrimary, got %v", p.Mode())
	}
	if p.Page() != 1 || p.TotalPages() != TotalUnknown {
		t.Errorf("want page 1 / total unknown, got %d/%d", p.Page(), p.TotalPages())
	}
}

func TestPrimaryLoadedSetsPageCount(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	p.PrimaryLoaded(5)
	if p.TotalPages() != 5 {
		t.Errorf("want 5 pages, got %d", p.TotalPages())
	}
	if p.Page() != 1 {
		t.Errorf("page must stay at 1, got %d", p.Page())
	}
}

func TestPrimaryFailureFallsBackAutomatically(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	p.PrimaryFailed()
	if p.Mode() != PreviewingPdfFallback {
		t.Fatalf("want PreviewingPdfFallback, got %v", p.Mode())
	}
}

func TestPrimaryFailedIgnoredWhenNotPrimary(t *testing.T) {
	p := NewPreview()
	p.PrimaryFailed()
	if p.Mode() != Closed {
		t.Errorf("closed preview must ignore renderer failures, got %v", p.Mode())
	}
	p.Open(imgRecord)
	p.PrimaryFailed()
	if p.Mode() != PreviewingImage {
		t.Errorf("image preview must ignore renderer failures, got %v", p.Mode())
	}
}

func TestToggleViewerBothWays(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	p.PrimaryLoaded(3)

	p.ToggleViewer()
	if p.Mode() != PreviewingPdfFallback {
		t.Fatalf("manual toggle: want fallback, got %v", p.Mode())
	}

	p.ToggleViewer()
	if p.Mode() != PreviewingPdfPrimary {
		t.Fatalf("toggle back: want primary, got %v", p.Mode())
	}
	if p.Page() != 1 || p.TotalPages() != TotalUnknown {
		t.Errorf("toggle back restarts at page 1 with unknown total, got %d/%d", p.Page(), p.TotalPages())
	}
}

func TestPageNavigationClampsToRange(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	p.PrimaryLoaded(2)

	p.PrevPage() // already at 1: no-op
	if p.Page() != 1 {
		t.Errorf("prev at first page: want 1, got %d", p.Page())
	}
	p.NextPage()
	if p.Page() != 2 {
		t.Errorf("next: want 2, got %d", p.Page())
	}
	p.NextPage() // already at last: no-op
	if p.Page() != 2 {
		t.Errorf("next at last page: want 2, got %d", p.Page())
	}
	p.PrevPage()
	if p.Page() != 1 {
		t.Errorf("prev: want 1, got %d", p.Page())
	}
}

func TestPageNavigationNoOpWithUnknownTotal(t *testing.T) {
	p := NewPreview()
	p.Open(pdfRecord)
	p.NextPage()
	if p.Page() != 1 {
		t.Errorf("navigation before load must be a no-op, got page %d", p.Page())
	}
}

func TestCloseFromEveryState(t *testing.T) {
	for _, setup := range []func(*Preview){
		func(p *Preview) { p.Open(imgRecord) },
		func(p *Preview) { p.Open(pdfRecord) },
		func(p *Preview) { p.Open(pdfRecord); p.PrimaryFailed() },
	} {
		p := NewPreview()
		setup(p)
		p.Close()
		if p.Mode() != Closed {
			t.Errorf("close must reach Closed, got %v", p.Mode())
		}
	}
}
