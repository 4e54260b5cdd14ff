// Package currency provides the USD to RUB rate lookup used for shipping
// cost calculation: an HTTP feed client plus a caching, never-failing
// provider in front of it.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// feedResponse mirrors the central bank daily feed. Only the USD quote is
// read; the rest of the document is ignored.
type feedResponse struct {
	Valute struct {
		USD struct {
			Value float64 `json:"Value"`
		} `json:"USD"`
	} `json:"Valute"`
}

// FeedClient fetches the current USD to RUB rate from the daily JSON feed.
type FeedClient struct {
	url    string
	client *http.Client
}

// NewFeedClient creates a feed client for the given feed URL.
func NewFeedClient(url string) *FeedClient {
	return &FeedClient{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch retrieves and parses the feed, returning the USD quote in rubles.
// Returns an error on transport failure, a non-200 status, malformed JSON or
// a non-positive quote.
func (c *FeedClient) Fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build rate feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err = json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return 0, fmt.Errorf("decode rate feed: %w", err)
	}

	rate := feed.Valute.USD.Value
	if rate <= 0 {
		return 0, fmt.Errorf("rate feed returned non-positive USD quote %v", rate)
	}

	return rate, nil
}
