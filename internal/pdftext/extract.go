// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// defaultPageLimit bounds extraction when the caller does not override it.
const defaultPageLimit = 20

// minTextLength is the threshold below which extracted text is flagged
// as low confidence (likely an image-based PDF).
const minTextLength = 100

// lowTextWarning is prepended to low-confidence extractions.
const lowTextWarning = "Warning: Extracted text is very short. PDF might be image-based or have extraction issues."

// whitespaceRE collapses whitespace runs inside page text.
var whitespaceRE = regexp.MustCompile(`\s+`)

// Extraction is the structured result of a text extraction. Exactly one
// of Text or Failure is meaningful: a decode failure carries no text,
// and a successful extraction carries no failure. Render collapses
// either variant to the plain text the caller-facing operations return.
type Extraction struct {
	// Text is the assembled page text with page-boundary markers.
	Text string

	// Pages is the number of pages rendered into Text.
	Pages int

	// LowConfidence marks extractions whose total text fell below the
	// minimal length threshold.
	LowConfidence bool

	// Failure holds the decode error for corrupt or unsupported
	// documents. It is rendered as readable text, never raised.
	Failure error
}

// Render returns the extraction as plain text. Failures become a
// textual error description, and low-confidence output is prefixed
// with the image-based-PDF warning.
func (e Extraction) Render() string {
	if e.Failure != nil {
		return fmt.Sprintf("Error extracting PDF text: %v", e.Failure)
	}
	if e.LowConfidence {
		return lowTextWarning + "\n\n" + e.Text
	}
	return e.Text
}

// Extract converts PDF bytes into cleaned, paginated plain text bounded
// by pageLimit (default 20 when non-positive). Decode failures are
// captured in the returned Extraction rather than returned as errors.
func Extract(data []byte, pageLimit int) Extraction {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	pages, err := decodePages(data, pageLimit)
	if err != nil {
		return Extraction{Failure: err}
	}
	return assemble(pages)
}

// decodePages extracts per-page text for at most pageLimit pages. The
// pdf package panics on some malformed documents, so the recover here
// folds those into the ordinary error path.
func decodePages(data []byte, pageLimit int) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts, err = nil, fmt.Errorf("decoding PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages > pageLimit {
		numPages = pageLimit
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}

		var b strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
		texts = append(texts, b.String())
	}
	return texts, nil
}

// assemble joins per-page text under ascending page-boundary markers,
// collapsing whitespace runs, and flags low-confidence output.
func assemble(pages []string) Extraction {
	parts := make([]string, 0, len(pages))
	for i, text := range pages {
		cleaned := strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s\n", i+1, cleaned))
	}

	text := strings.Join(parts, "\n")
	return Extraction{
		Text:          text,
		Pages:         len(pages),
		LowConfidence: len(text) < minTextLength,
	}
}
