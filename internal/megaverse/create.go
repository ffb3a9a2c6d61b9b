package megaverse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vk/stargridgo/internal/apierr"
	"github.com/vk/stargridgo/internal/grid"
)

// Error bodies are kept short so one verbose API response cannot flood logs.
const errorBodyLimit = 8 << 10

// createRequest is the shared POST payload. Color and Direction apply only to
// soloons and comeths and are omitted otherwise.
type createRequest struct {
	Row         int    `json:"row"`
	Column      int    `json:"column"`
	CandidateID string `json:"candidateId"`
	Color       string `json:"color,omitempty"`
	Direction   string `json:"direction,omitempty"`
}

// CreatePolyanet places a polyanet at the given cell.
func (c *Client) CreatePolyanet(ctx context.Context, at grid.Point) error {
	return c.create(ctx, "create polyanet", "/polyanets", createRequest{
		Row:         at.Row,
		Column:      at.Column,
		CandidateID: c.candidateID,
	})
}

// CreateSoloon places a soloon of the given color at the given cell.
func (c *Client) CreateSoloon(ctx context.Context, at grid.Point, color string) error {
	return c.create(ctx, "create soloon", "/soloons", createRequest{
		Row:         at.Row,
		Column:      at.Column,
		CandidateID: c.candidateID,
		Color:       color,
	})
}

// CreateCometh places a cometh with the given direction at the given cell.
func (c *Client) CreateCometh(ctx context.Context, at grid.Point, direction string) error {
	return c.create(ctx, "create cometh", "/comeths", createRequest{
		Row:         at.Row,
		Column:      at.Column,
		CandidateID: c.candidateID,
		Direction:   direction,
	})
}

func (c *Client) create(ctx context.Context, op, path string, payload createRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &apierr.Error{Op: op, Err: err}
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apierr.Error{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}
	return nil
}

func readErrorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, errorBodyLimit))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
