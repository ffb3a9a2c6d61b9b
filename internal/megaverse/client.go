// Package megaverse is the HTTP client for the megaverse map API. It fetches
// a candidate's goal map and creates astral objects one POST at a time.
package megaverse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vk/stargridgo/internal/apierr"
)

// DefaultRequestTimeout bounds a single HTTP attempt when the config does not
// say otherwise. Retries re-arm it, so one stuck request can never hold an
// execution slot forever.
const DefaultRequestTimeout = 30 * time.Second

// Config carries the connection settings for a Client.
type Config struct {
	BaseURL        string
	CandidateID    string
	RequestTimeout time.Duration
}

// Client talks to one megaverse API endpoint on behalf of one candidate.
// It is safe for concurrent use.
type Client struct {
	http        *http.Client
	baseURL     string
	candidateID string
}

// NewClient validates the config and returns a live client with a pooled
// transport.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("megaverse: base URL is required")
	}
	if cfg.CandidateID == "" {
		return nil, errors.New("megaverse: candidate ID is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		candidateID: cfg.CandidateID,
	}, nil
}

// GoalMap fetches the candidate's goal map as a matrix of cell tokens.
func (c *Client) GoalMap(ctx context.Context) ([][]string, error) {
	const op = "fetch goal map"

	url := fmt.Sprintf("%s/map/%s/goal", c.baseURL, c.candidateID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apierr.Error{Op: op, Err: err}
	}
	defer drainAndClose(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.Error{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierr.Error{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload struct {
		Goal [][]string `json:"goal"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode goal map: %w", err)
	}
	return payload.Goal, nil
}

// CloseIdleConnections releases pooled connections once a run is over.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
