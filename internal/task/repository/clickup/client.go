package clickup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// requestsPerMinute matches the ClickUp free-plan rate limit; the limiter
// keeps sequential fan-out calls under it.
const requestsPerMinute = 100

// Client is the HTTP wrapper for the ClickUp REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new ClickUp HTTP client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 10),
	}
}

// get performs a rate-limited GET and returns the raw body for 2xx responses.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("clickup: rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.apiToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clickup: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("clickup: API error %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
