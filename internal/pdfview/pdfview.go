// Package pdfview is the primary PDF renderer: it parses a report with
// pdfcpu, reports the page count, and extracts per-page text for the
// page-by-page terminal preview. Any parse failure here drives the preview
// controller into its fallback viewer.
package pdfview

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is a parsed PDF ready for page-by-page display.
type Document struct {
	PageCount int
	pages     []string // extracted text, index 0 = page 1
}

// Load parses and validates raw PDF bytes. A malformed or incompatible
// document returns an error; callers treat that as a render failure, not a
// fatal condition.
func Load(data []byte) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("parsing pdf: %w", err)
	}
	if ctx.PageCount < 1 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	doc := &Document{PageCount: ctx.PageCount}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		doc.pages = append(doc.pages, extractPageText(ctx, pageNr))
	}
	return doc, nil
}

// PageText returns the extracted text of page n (1-based). Pages outside
// [1, PageCount] return an empty string.
func (d *Document) PageText(n int) string {
	if n < 1 || n > len(d.pages) {
		return ""
	}
	return d.pages[n-1]
}

// extractPageText pulls text out of one page's content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromStream parses the content stream's text-showing operators.
// Report pages are generated by the device firmware with simple Tj/Td
// sequences, so a full text-layer engine is not needed here.
func textFromStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		showsText := bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ"))
		if showsText {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteString(text)
				}
			}
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// decodePDFString handles the escape sequences the firmware's generator
// emits.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '(', ')', '\\':
				sb.WriteByte(raw[i])
			default:
				sb.WriteByte('\\')
				sb.WriteByte(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}
