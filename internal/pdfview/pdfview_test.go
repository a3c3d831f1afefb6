package pdfview

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoadSinglePage(t *testing.T) {
	doc, err := Load(buildTextPDF("RGB Values - Capture 1"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.PageCount != 1 {
		t.Fatalf("want 1 page, got %d", doc.PageCount)
	}
	if text := doc.PageText(1); !strings.Contains(text, "Capture 1") {
		t.Errorf("page text %q does not contain the drawn string", text)
	}
}

func TestLoadTwoPages(t *testing.T) {
	doc, err := Load(buildTextPDF("Capture 1", "Capture 2"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.PageCount != 2 {
		t.Fatalf("want 2 pages, got %d", doc.PageCount)
	}
	if text := doc.PageText(2); !strings.Contains(text, "Capture 2") {
		t.Errorf("page 2 text %q", text)
	}
}

func TestPageTextOutOfRange(t *testing.T) {
	doc, err := Load(buildTextPDF("only page"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.PageText(0) != "" || doc.PageText(2) != "" {
		t.Error("out-of-range pages must yield empty text")
	}
}

func TestLoadMalformedPDF(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("not a pdf"),
		[]byte("%PDF-1.4\ngarbage"),
	} {
		if _, err := Load(data); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestDecodePDFString(t *testing.T) {
	got := decodePDFString([]byte(`R: 120 \(avg\) \\ line\nnext`))
	want := "R: 120 (avg) \\ line\nnext"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

// buildTextPDF assembles a minimal valid PDF with one page per text string,
// each page drawing its string with a single Tj operator.
func buildTextPDF(pageTexts ...string) []byte {
	n := len(pageTexts)
	// Objects: 1 catalog, 2 pages, then per page: page obj + content obj,
	// finally one shared font object.
	fontObj := 3 + 2*n
	total := fontObj + 1

	var kids []string
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, total)

	writeObj := func(nr int, body string) {
		offsets[nr] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))

	for i, text := range pageTexts {
		escaped := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(text)
		stream := "BT\n/F1 12 Tf\n72 720 Td\n(" + escaped + ") Tj\nET"
		pageNr := 3 + 2*i
		writeObj(pageNr, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
			pageNr+1, fontObj))
		writeObj(pageNr+1, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	writeObj(fontObj, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", total)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i < total; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefOffset)

	return []byte(b.String())
}
