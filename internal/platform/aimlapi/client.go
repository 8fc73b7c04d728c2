// Package aimlapi implements the generation.ImageClient interface against
// an AIMLAPI-compatible image-generation endpoint.
package aimlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/generation"
)

// Client calls the provider's /images/generations endpoint over HTTP.
type Client struct {
	token      string
	baseURL    string
	provider   string
	model      string
	size       string
	httpClient *http.Client
}

// Ensure Client implements generation.ImageClient.
var _ generation.ImageClient = (*Client)(nil)

// NewClient creates a new image-provider client from configuration.
func NewClient(cfg config.ImageAPIConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: image API token cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: image API base URL cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		token:    cfg.Token,
		baseURL:  cfg.BaseURL,
		provider: cfg.Provider,
		model:    cfg.Model,
		size:     cfg.Size,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// imageRequest is the request body for the image-generation endpoint.
type imageRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Prompt   string `json:"prompt"`
	Size     string `json:"size"`
}

// imageResponse is the response body of the image-generation endpoint.
type imageResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// GenerateImage submits a prompt and returns the URL of the first generated
// image. Returns generation.ErrRateLimited on HTTP 429 so callers can retry.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(imageRequest{
		Provider: c.provider,
		Model:    c.model,
		Prompt:   prompt,
		Size:     c.size,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/images/generations",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", generation.ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a bounded amount of the body for the error message.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s",
			generation.ErrInvalidResponse, resp.StatusCode, msg)
	}

	var parsed imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode body: %v", generation.ErrInvalidResponse, err)
	}

	if len(parsed.Images) == 0 || parsed.Images[0].URL == "" {
		return "", fmt.Errorf("%w: no image URL in response", generation.ErrInvalidResponse)
	}

	return parsed.Images[0].URL, nil
}
