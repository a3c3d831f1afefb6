package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkGlyphs are the eight vertical-bar levels used for histogram rows.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

func (m *Model) renderResults() string {
	var sb strings.Builder
	sb.WriteString(heading("Colorimetry Results"))

	if m.captureErr != "" {
		sb.WriteString(errorStyle.Render("  "+m.captureErr) + "\n\n")
	}
	if m.session == nil {
		if m.capturing {
			sb.WriteString(dimStyle.Render("  Processing…") + "\n")
		} else {
			sb.WriteString(dimStyle.Render("  No capture data available. Press c to capture new images.") + "\n")
		}
		return sb.String()
	}

	// Capture selector row.
	var tabs []string
	for i, c := range m.session.Captures {
		label := fmt.Sprintf(" Capture %d ", c.CaptureNumber)
		if i == m.selectedCapture {
			tabs = append(tabs, activeFilterStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveFilterStyle.Render(label))
		}
	}
	sb.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")

	if m.selectedCapture >= len(m.session.Captures) {
		return sb.String()
	}
	c := m.session.Captures[m.selectedCapture]

	sb.WriteString(heading("Captured Image"))
	switch {
	case m.captureImageErrs[m.selectedCapture] != "":
		sb.WriteString(dimStyle.Render("  image unavailable: "+m.captureImageErrs[m.selectedCapture]) + "\n")
	case m.captureImages[m.selectedCapture] != "":
		sb.WriteString(indent(m.captureImages[m.selectedCapture], "  ") + "\n")
	case c.ImageURL == "":
		sb.WriteString(dimStyle.Render("  (no image for this capture)") + "\n")
	default:
		sb.WriteString(dimStyle.Render("  loading image…") + "\n")
	}

	// RGB summary with a color swatch built from the averages.
	sb.WriteString(heading("RGB Values"))
	row := func(label string, style lipgloss.Style, v int) {
		sb.WriteString("  " + style.Render(fmt.Sprintf("%s %3d", label, v)) + "\n")
	}
	row("R:", channelRedStyle, c.RGBValues.R)
	row("G:", channelGreenStyle, c.RGBValues.G)
	row("B:", channelBlueStyle, c.RGBValues.B)

	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.RGBValues.R, c.RGBValues.G, c.RGBValues.B))).
		Render(strings.Repeat(" ", 24))
	sb.WriteString("\n  " + swatch + "\n")

	// Per-channel histogram sparklines.
	sb.WriteString(heading("Histogram (pixel intensity 0–255)"))
	width := m.width - 12
	if width > 64 {
		width = 64
	}
	if width < 16 {
		width = 16
	}
	sb.WriteString("  " + labelStyle.Render("red  ") + channelRedStyle.Render(sparkline(c.HistogramData.Red, width)) + "\n")
	sb.WriteString("  " + labelStyle.Render("green") + " " + channelGreenStyle.Render(sparkline(c.HistogramData.Green, width)) + "\n")
	sb.WriteString("  " + labelStyle.Render("blue ") + " " + channelBlueStyle.Render(sparkline(c.HistogramData.Blue, width)) + "\n")

	if m.session.PDFURL != "" {
		sb.WriteString("\n" + dimStyle.Render("  Full report: "+m.session.PDFURL) + "\n")
	}
	return sb.String()
}

// sparkline compresses histogram buckets into width columns, scaling bar
// heights to the tallest bin.
func sparkline(buckets []int, width int) string {
	if len(buckets) == 0 || width < 1 {
		return ""
	}
	if width > len(buckets) {
		width = len(buckets)
	}

	bins := make([]int, width)
	per := float64(len(buckets)) / float64(width)
	for i := range bins {
		lo := int(float64(i) * per)
		hi := int(float64(i+1) * per)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(buckets) {
			hi = len(buckets)
		}
		for _, v := range buckets[lo:hi] {
			bins[i] += v
		}
	}

	max := 0
	for _, v := range bins {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return strings.Repeat(string(sparkGlyphs[0]), width)
	}

	var sb strings.Builder
	for _, v := range bins {
		level := v * (len(sparkGlyphs) - 1) / max
		sb.WriteRune(sparkGlyphs[level])
	}
	return sb.String()
}
