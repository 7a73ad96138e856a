// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestAssemblePageMarkers(t *testing.T) {
	pages := []string{
		"First page body text with enough words to pass the length check.",
		"Second page body text, also comfortably long enough for the check.",
		"Third page body text rounding out the sample document contents.",
	}

	ext := assemble(pages)
	if ext.Failure != nil {
		t.Fatalf("Failure = %v", ext.Failure)
	}
	if ext.Pages != 3 {
		t.Errorf("Pages = %d, want 3", ext.Pages)
	}

	// Markers appear once per page, in ascending order starting at 1.
	for i := 1; i <= 3; i++ {
		marker := fmt.Sprintf("--- Page %d ---", i)
		if strings.Count(ext.Text, marker) != 1 {
			t.Errorf("marker %q should appear exactly once", marker)
		}
	}
	if strings.Contains(ext.Text, "--- Page 4 ---") {
		t.Error("no marker should exist past the last page")
	}
	p1 := strings.Index(ext.Text, "--- Page 1 ---")
	p2 := strings.Index(ext.Text, "--- Page 2 ---")
	p3 := strings.Index(ext.Text, "--- Page 3 ---")
	if !(p1 < p2 && p2 < p3) {
		t.Errorf("markers out of order: %d, %d, %d", p1, p2, p3)
	}
}

func TestAssembleCollapsesWhitespace(t *testing.T) {
	ext := assemble([]string{"several   words\n\n\nwith \t odd    spacing spread across the page body"})
	if strings.Contains(ext.Text, "  ") {
		t.Errorf("whitespace runs should collapse to single spaces: %q", ext.Text)
	}
	if !strings.Contains(ext.Text, "several words with odd spacing") {
		t.Errorf("cleaned text missing: %q", ext.Text)
	}
}

func TestAssembleLowConfidenceThreshold(t *testing.T) {
	short := assemble([]string{"tiny"})
	if !short.LowConfidence {
		t.Errorf("output of %d chars should be low confidence", len(short.Text))
	}

	long := assemble([]string{strings.Repeat("substantial page text ", 10)})
	if len(long.Text) < minTextLength {
		t.Fatalf("test fixture too short: %d chars", len(long.Text))
	}
	if long.LowConfidence {
		t.Error("output at or above the threshold should not be low confidence")
	}
}

func TestRenderVariants(t *testing.T) {
	failed := Extraction{Failure: fmt.Errorf("opening PDF: bad header")}
	if got := failed.Render(); !strings.HasPrefix(got, "Error extracting PDF text:") {
		t.Errorf("failure should render as readable error text, got %q", got)
	}

	low := Extraction{Text: "--- Page 1 ---\nx\n", LowConfidence: true}
	if got := low.Render(); !strings.HasPrefix(got, lowTextWarning) {
		t.Errorf("low-confidence output should carry the warning prefix, got %q", got)
	}
	if !strings.Contains(low.Render(), low.Text) {
		t.Error("low-confidence render should still include the extracted text")
	}

	ok := Extraction{Text: "--- Page 1 ---\nplenty of text\n"}
	if got := ok.Render(); got != ok.Text {
		t.Errorf("normal render should be the text itself, got %q", got)
	}
}

// minimalPDF builds a small uncompressed PDF with one text line per
// page, computing the cross-reference offsets as it writes. Object
// layout: 1 catalog, 2 page tree, 3 font, then one page object and one
// content stream per page.
func minimalPDF(pageTexts []string) []byte {
	var buf bytes.Buffer
	offsets := []int{0}
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	buf.WriteString("%PDF-1.4\n")

	n := len(pageTexts)
	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 4+n+i))
	}
	for _, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d %05d n \n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xrefPos)
	return buf.Bytes()
}

func TestExtractHonorsPageLimit(t *testing.T) {
	data := minimalPDF([]string{
		"Alpha page body text",
		"Bravo page body text",
		"Charlie page body text",
		"Delta page body text",
		"Echo page body text",
	})

	ext := Extract(data, 2)
	if ext.Failure != nil {
		t.Fatalf("Failure = %v", ext.Failure)
	}
	if ext.Pages != 2 {
		t.Errorf("Pages = %d, want 2", ext.Pages)
	}
	for i := 1; i <= 2; i++ {
		marker := fmt.Sprintf("--- Page %d ---", i)
		if strings.Count(ext.Text, marker) != 1 {
			t.Errorf("marker %q should appear exactly once", marker)
		}
	}
	if strings.Contains(ext.Text, "--- Page 3 ---") {
		t.Error("pages past the limit should not be rendered")
	}
	if !strings.Contains(ext.Text, "Alpha") || !strings.Contains(ext.Text, "Bravo") {
		t.Errorf("text from the first two pages missing: %q", ext.Text)
	}
	if strings.Contains(ext.Text, "Charlie") {
		t.Error("text from page 3 should not be extracted")
	}
}

func TestExtractAllPagesWithinLimit(t *testing.T) {
	data := minimalPDF([]string{
		"First page contents",
		"Second page contents",
		"Third page contents",
	})

	ext := Extract(data, 20)
	if ext.Failure != nil {
		t.Fatalf("Failure = %v", ext.Failure)
	}
	if ext.Pages != 3 {
		t.Errorf("Pages = %d, want 3", ext.Pages)
	}
	if strings.Count(ext.Text, "--- Page 3 ---") != 1 {
		t.Error("last page marker missing")
	}
	if strings.Contains(ext.Text, "--- Page 4 ---") {
		t.Error("no marker should exist past the last page")
	}
}

func TestExtractCorruptDocument(t *testing.T) {
	ext := Extract([]byte("this is not a PDF document"), 20)
	if ext.Failure == nil {
		t.Fatal("corrupt input should set Failure")
	}
	if ext.Text != "" {
		t.Errorf("failed extraction should carry no text, got %q", ext.Text)
	}
	if !strings.HasPrefix(ext.Render(), "Error extracting PDF text:") {
		t.Errorf("Render = %q", ext.Render())
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	ext := Extract(nil, 20)
	if ext.Failure == nil {
		t.Fatal("empty input should set Failure")
	}
}
