// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext downloads paper PDFs and extracts bounded plain text
// from them, memoizing extractions per (identifier, page limit).
package pdftext

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher downloads a paper's PDF given its canonical identifier.
// BaseURL is the PDF endpoint prefix; tests point it at an httptest
// server.
type Fetcher struct {
	Client  *http.Client
	BaseURL string
}

// Fetch builds the PDF URL from the fixed template and downloads the
// document in a single attempt. Non-success statuses are returned as
// errors, never retried.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	url := f.BaseURL + id + ".pdf"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PDF request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download PDF: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading PDF body: %w", err)
	}
	return data, nil
}
