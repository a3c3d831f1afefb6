package view

import "github.com/jakditstudio/coloGAMA/internal/history"

// Mode is the preview controller's current rendering state.
type Mode int

const (
	// Closed means no record is being previewed.
	Closed Mode = iota
	// PreviewingImage shows a direct image preview of a non-PDF record.
	PreviewingImage
	// PreviewingPdfPrimary is the page-aware PDF renderer.
	PreviewingPdfPrimary
	// PreviewingPdfFallback is the degraded external-viewer mode, entered
	// automatically when the primary renderer fails or by manual toggle.
	PreviewingPdfFallback
)

// TotalUnknown marks a PDF whose page count has not been reported yet.
const TotalUnknown = 0

// Preview is the two-tier document preview controller. The primary PDF
// path offers page navigation once the renderer reports a page count; the
// fallback path trades pagination for guaranteed viewability.
type Preview struct {
	mode       Mode
	page       int
	totalPages int
}

// NewPreview returns a closed preview controller.
func NewPreview() *Preview {
	return &Preview{mode: Closed}
}

func (p *Preview) Mode() Mode      { return p.mode }
func (p *Preview) Page() int       { return p.page }
func (p *Preview) TotalPages() int { return p.totalPages }

// Open starts previewing a record: PDFs enter the primary renderer at page 1
// with an unknown page count, everything else gets a direct image preview.
func (p *Preview) Open(r history.Record) {
	if r.Type == history.TypePDF {
		p.mode = PreviewingPdfPrimary
		p.page = 1
		p.totalPages = TotalUnknown
		return
	}
	p.mode = PreviewingImage
	p.page = 0
	p.totalPages = 0
}

// Close returns to the closed state. Called on explicit close and on every
// filter change.
func (p *Preview) Close() {
	p.mode = Closed
	p.page = 0
	p.totalPages = 0
}

// PrimaryLoaded records the page count reported by the primary renderer.
// Ignored outside the primary state.
func (p *Preview) PrimaryLoaded(totalPages int) {
	if p.mode != PreviewingPdfPrimary {
		return
	}
	p.totalPages = totalPages
	if p.page > totalPages {
		p.page = totalPages
	}
	if p.page < 1 {
		p.page = 1
	}
}

// PrimaryFailed switches to the fallback renderer on a primary load
// failure. Ignored outside the primary state.
func (p *Preview) PrimaryFailed() {
	if p.mode != PreviewingPdfPrimary {
		return
	}
	p.mode = PreviewingPdfFallback
	p.page = 0
	p.totalPages = 0
}

// ToggleViewer flips between the primary and fallback PDF viewers.
// Returning to the primary renderer restarts at page 1 with the page count
// unknown until the renderer reports again.
func (p *Preview) ToggleViewer() {
	switch p.mode {
	case PreviewingPdfPrimary:
		p.mode = PreviewingPdfFallback
		p.page = 0
		p.totalPages = 0
	case PreviewingPdfFallback:
		p.mode = PreviewingPdfPrimary
		p.page = 1
		p.totalPages = TotalUnknown
	}
}

// NextPage advances one page. Only meaningful in the primary state with a
// known page count; out-of-range requests are no-ops, not errors.
func (p *Preview) NextPage() {
	if p.mode != PreviewingPdfPrimary || p.totalPages == TotalUnknown {
		return
	}
	if p.page < p.totalPages {
		p.page++
	}
}

// PrevPage steps back one page under the same rules as NextPage.
func (p *Preview) PrevPage() {
	if p.mode != PreviewingPdfPrimary || p.totalPages == TotalUnknown {
		return
	}
	if p.page > 1 {
		p.page--
	}
}
