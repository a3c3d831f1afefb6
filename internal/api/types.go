package api

import "github.com/jakditstudio/coloGAMA/internal/history"

// RGBValues is the per-capture average channel summary, each 0–255.
type RGBValues struct {
	R int `json:"R"`
	G int `json:"G"`
	B int `json:"B"`
}

// HistogramData holds the 256-bucket pixel counts per channel.
type HistogramData struct {
	Red   []int `json:"red"`
	Green []int `json:"green"`
	Blue  []int `json:"blue"`
}

// CaptureEntry is one acquisition cycle within a capture session.
type CaptureEntry struct {
	CaptureNumber int           `json:"capture_number"`
	ImageURL      string        `json:"image_url"`
	RGBValues     RGBValues     `json:"rgb_values"`
	HistogramData HistogramData `json:"histogram_data"`
}

// CaptureSession is the full result of one hardware capture run. A session
// is never mutated in place; a new capture replaces it wholesale.
type CaptureSession struct {
	ID       string         `json:"id"`
	Captures []CaptureEntry `json:"captures"`
	PDFURL   string         `json:"pdf_url"`
}

// Listing aliases the history package's categorized response shape so
// callers only deal in one type.
type Listing = history.Listing
