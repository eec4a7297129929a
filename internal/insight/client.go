// Package insight fetches supplementary insight messages from an external
// service. The service is untrusted and may be slow, unreachable or return
// garbage. Its failure must never reach a caller, so every failure mode
// collapses to an empty result.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client calls the external insight service.
type Client struct {
	url string
	cli *http.Client
}

// Result is what a fetch produced. Messages is empty whenever anything
// went wrong; the cause is kept in Err so the absorption is visible to
// logs and tests, but it is never returned as a function error.
type Result struct {
	Messages []string
	Err      error
}

// New returns a client for the service at url. An empty url disables the
// client, it then fetches nothing. The timeout bounds the whole call, the
// insight service must never hang a request.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		cli: &http.Client{Timeout: timeout},
	}
}

type insightRequest struct {
	UserID string `json:"user_id"`
}

type insightResponse struct {
	Insights []struct {
		Message string `json:"message"`
	} `json:"insights"`
}

// Fetch requests insights for a user. Only well-formed items with a
// message are kept, in the order the service returned them.
func (c *Client) Fetch(ctx context.Context, userID uuid.UUID) Result {
	if c == nil || c.url == "" {
		return Result{Messages: []string{}}
	}

	body, err := json.Marshal(insightRequest{UserID: userID.String()})
	if err != nil {
		return Result{Messages: []string{}, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{Messages: []string{}, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cli.Do(req)
	if err != nil {
		return Result{Messages: []string{}, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Messages: []string{}, Err: fmt.Errorf("insight service returned HTTP %d", resp.StatusCode)}
	}

	var parsed insightResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{Messages: []string{}, Err: err}
	}

	messages := make([]string, 0, len(parsed.Insights))
	for _, item := range parsed.Insights {
		if item.Message != "" {
			messages = append(messages, item.Message)
		}
	}

	return Result{Messages: messages}
}
