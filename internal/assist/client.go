// Package assist wraps the hosted content generation API: drafting post text
// from a title and content type, and producing images for a post. Failures
// here are surfaced to the caller and never block a local save.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// ErrDisabled indicates no generation endpoint is configured.
var ErrDisabled = errors.New("content generation not configured")

// TextRequest asks for drafted post content.
type TextRequest struct {
	Title       string
	ContentType domain.ContentType
	Reference   string // optional source material (brand notes, feed item)
}

// TextResponse is drafted content plus any suggested image URLs.
type TextResponse struct {
	Content string
	Images  []string
}

// ImageRequest asks for a generated image for existing content.
type ImageRequest struct {
	Content  string
	Platform domain.Platform
	Style    string
}

// Client provides access to the content generation service.
type Client interface {
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient creates a Client against the configured generation endpoint.
func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

type generateTextBody struct {
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	Reference   string `json:"reference,omitempty"`
}

type generateTextResult struct {
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

func (c *httpClient) GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}

	var result generateTextResult
	body := generateTextBody{
		Title:       req.Title,
		ContentType: string(req.ContentType),
		Reference:   req.Reference,
	}
	if err := c.post(ctx, "/v1/generate/text", body, &result); err != nil {
		return nil, err
	}
	return &TextResponse{Content: result.Content, Images: result.Images}, nil
}

type generateImageBody struct {
	Content  string `json:"content"`
	Platform string `json:"platform,omitempty"`
	Style    string `json:"style,omitempty"`
}

type generateImageResult struct {
	URL string `json:"url"`
}

func (c *httpClient) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	if !c.cfg.Enabled {
		return "", ErrDisabled
	}

	var result generateImageResult
	body := generateImageBody{
		Content:  req.Content,
		Platform: string(req.Platform),
		Style:    req.Style,
	}
	if err := c.post(ctx, "/v1/generate/image", body, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

func (c *httpClient) post(ctx context.Context, path string, body, result any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calling generation service: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation service returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
