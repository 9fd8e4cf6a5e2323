package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fundfeed/discovery-card/internal/model"
)

// DefaultRequestTimeout bounds a single toggle round-trip
const DefaultRequestTimeout = 10 * time.Second

// Client is the live HTTP implementation of StarToggler
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}

type starRequest struct {
	Starred bool `json:"starred"`
}

type starResponse struct {
	IsStarred bool `json:"is_starred"`
}

// ToggleStar sets the project's starred flag on the server to the flag the
// given project carries and returns the project with the confirmed value
func (c *Client) ToggleStar(ctx context.Context, project model.Project) (model.Project, error) {
	body, err := json.Marshal(starRequest{Starred: project.Starred()})
	if err != nil {
		return project, fmt.Errorf("encode star request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/star", c.baseURL, project.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return project, fmt.Errorf("build star request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return project, fmt.Errorf("star request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return project, fmt.Errorf("star request: unexpected status %d", resp.StatusCode)
	}

	var decoded starResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return project, fmt.Errorf("decode star response: %w", err)
	}

	return project.WithStarred(decoded.IsStarred), nil
}
