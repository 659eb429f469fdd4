package panelgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// BatchResult is the service's answer to one POST /panels.
type BatchResult struct {
	Status    string `json:"status"`
	Accepted  int    `json:"accepted"`
	Duplicate int    `json:"duplicate"`
}

// Client talks to a panelboard service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Health checks that /healthz answers 200.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

// Submit posts recs as one batch.
func (c *Client) Submit(ctx context.Context, recs []model.PanelRecord) (BatchResult, error) {
	body, err := json.Marshal(recs)
	if err != nil {
		return BatchResult{}, fmt.Errorf("marshal batch: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/panels", bytes.NewReader(body))
	if err != nil {
		return BatchResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusAccepted, http.StatusOK:
		var res BatchResult
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			return BatchResult{}, fmt.Errorf("decode batch result: %w", err)
		}
		return res, nil
	case http.StatusTooManyRequests:
		return BatchResult{}, ErrBackpressure
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return BatchResult{}, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, bytes.TrimSpace(msg))
	}
}

// Overview fetches /overview narrowed by filters.
func (c *Client) Overview(ctx context.Context, filters url.Values) (types.Overview, error) {
	path := "/overview"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return types.Overview{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return types.Overview{}, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	var ov types.Overview
	if err := json.NewDecoder(resp.Body).Decode(&ov); err != nil {
		return types.Overview{}, fmt.Errorf("decode overview: %w", err)
	}
	return ov, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
