package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrEndpointMissing is returned by Submit when no endpoint is configured.
var ErrEndpointMissing = errors.New("contact: no endpoint configured")

// Client posts submissions as JSON.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a Client with a bounded request timeout.
func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit validates s and posts it. Any non-2xx reply is an error.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	if errs := Validate(s); errs != nil {
		return errs
	}
	if c.Endpoint == "" {
		return ErrEndpointMissing
	}

	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post submission: unexpected status %s", resp.Status)
	}
	return nil
}
