package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.ContentFetcher = (*Fetcher)(nil)

// DefaultTimeout bounds a single raw-content fetch.
const DefaultTimeout = 15 * time.Second

// Fetcher retrieves raw file contents from the GitHub contents API with a
// single GET per request. Failures are terminal; there are no retries.
type Fetcher struct {
	client  *http.Client
	baseURL string
	token   string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithToken sets a bearer token for authenticated fetches. Without it,
// requests are unauthenticated and subject to public rate limits.
func WithToken(token string) FetcherOption {
	return func(f *Fetcher) {
		f.token = token
	}
}

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(base string) FetcherOption {
	return func(f *Fetcher) {
		f.baseURL = base
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher with the default timeout and API base.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: defaultBase,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs one GET against the contents API and returns the response
// body verbatim, requesting the raw media type.
func (f *Fetcher) Fetch(ctx context.Context, req codejudge.ContentRequest) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, RequestURL(f.baseURL, req), nil)
	if err != nil {
		return "", fmt.Errorf("github: building request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3.raw")
	if f.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("github: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("github: fetch failed: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("github: reading response: %w", err)
	}
	return string(body), nil
}
