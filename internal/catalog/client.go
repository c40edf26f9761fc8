// Package catalog fetches pages of the remote artwork listing.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"galleria/internal/domain"
)

// FetchError is returned for any failed or malformed remote call. The
// caller keeps its current state untouched and surfaces a notification.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PageResult is one page of the catalog plus the authoritative total.
type PageResult struct {
	Artworks []domain.Artwork
	Total    int
}

// Fetcher is the catalog contract the UI depends on.
type Fetcher interface {
	FetchPage(ctx context.Context, page, limit int) (*PageResult, error)
}

// Client fetches catalog pages over HTTP. Every call is a fresh request:
// no retries, no caching.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a catalog client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// listingEnvelope mirrors the wire shape of the listing endpoint.
// Pointer fields distinguish "absent" from zero so a contract
// violation fails closed instead of decoding as an empty page.
type listingEnvelope struct {
	Data       *[]domain.Artwork `json:"data"`
	Pagination *struct {
		Total *int `json:"total"`
	} `json:"pagination"`
}

// FetchPage requests one page of artworks. page is 1-based.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*PageResult, error) {
	if page < 1 || limit < 1 {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("invalid page window %d/%d", page, limit)}
	}

	endpoint := fmt.Sprintf("%s/artworks", c.baseURL)
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var envelope listingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("decode response: %w", err)}
	}

	// Any shape other than data + pagination.total is a contract
	// violation and fails closed.
	if envelope.Data == nil || envelope.Pagination == nil || envelope.Pagination.Total == nil {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("malformed listing response")}
	}
	total := *envelope.Pagination.Total
	if total < 0 {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("negative record total %d", total)}
	}

	return &PageResult{Artworks: *envelope.Data, Total: total}, nil
}
