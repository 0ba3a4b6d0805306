// Package fetcher talks to the external fetch microservice that does the
// actual per-URL feed retrieval and parsing. The dispatcher sends one batch
// of source URLs per tenant and gets back a flat list of item payloads.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ItemPayload is a single item as returned by the fetch service.
// All fields are optional, missing values are tolerated downstream.
type ItemPayload struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	SourceURL   string `json:"source_url"`
	Link        string `json:"link"`
	PublishDate string `json:"publish_date"`
	Description string `json:"description"`
	RSSURL      string `json:"rss_url"` // originating source URL, maps the item back to a source
}

// fetchRequest is the outbound request body
type fetchRequest struct {
	URLs []string `json:"urls"`
}

// fetchResponse is the expected success response body
type fetchResponse struct {
	Items []ItemPayload `json:"items"`
}

// Client calls the external fetch service over HTTP
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a fetch service client with a hard request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch sends the batch of source URLs to the fetch service and returns the
// item payloads. Any transport error, timeout, non-2xx status or undecodable
// body is a single error outcome, the caller penalizes the whole batch.
func (c *Client) Fetch(ctx context.Context, urls []string) ([]ItemPayload, error) {
	body, err := json.Marshal(fetchRequest{URLs: urls})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rss", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call fetch service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch service returned status %d", resp.StatusCode)
	}

	var result fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return result.Items, nil
}
