// Package fetch downloads OpenAPI documents from caller-supplied URLs with a
// bounded timeout. The standard net/http client is used directly; the only
// policy layered on top is the timeout and a response size cap.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxSpecSize caps downloaded documents at 10 MiB. Specs larger than this
// would be rejected by the gateway anyway.
const maxSpecSize = 10 << 20

// Fetcher downloads spec documents.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Get downloads the document at url and returns its raw bytes. Non-2xx
// responses are errors.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid spec URL %q: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download spec from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download spec from %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSpecSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read spec from %s: %w", url, err)
	}
	if len(body) > maxSpecSize {
		return nil, fmt.Errorf("spec from %s exceeds %d bytes", url, maxSpecSize)
	}

	return body, nil
}
