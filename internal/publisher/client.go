package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// Request holds the parameters for a publish or schedule call. A nil
// ScheduledFor publishes immediately; a set one asks the remote scheduler to
// hold the post until then.
type Request struct {
	Platform     domain.Platform
	Content      string
	MediaURLs    []string
	ScheduledFor *time.Time
}

// Response holds the result of a publish or schedule call. Confirmed is true
// when the remote scheduler has taken ownership of a scheduled post.
type Response struct {
	PostID    string
	Confirmed bool
	LatencyMs int64
}

// Client provides access to the remote social publishing service.
type Client interface {
	// Publish sends content to the platform, immediately or scheduled.
	Publish(ctx context.Context, req Request) (*Response, error)

	// Available checks whether the publisher endpoint is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the hosted publisher HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to the configured publisher
// endpoint.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// publishRequest is the JSON body sent to POST /v1/publish.
type publishRequest struct {
	Platform     string   `json:"platform"`
	Content      string   `json:"content"`
	MediaURLs    []string `json:"media_urls,omitempty"`
	ScheduledFor string   `json:"scheduled_for,omitempty"`
}

// publishResponse is the JSON body returned by POST /v1/publish.
type publishResponse struct {
	PostID    string `json:"post_id"`
	Confirmed bool   `json:"confirmed"`
}

func (c *httpClient) Publish(ctx context.Context, req Request) (*Response, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}

	start := time.Now()
	op := "publish"
	if req.ScheduledFor != nil {
		op = "schedule"
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := publishRequest{
		Platform:  string(req.Platform),
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
	}
	if req.ScheduledFor != nil {
		body.ScheduledFor = req.ScheduledFor.UTC().Format(time.RFC3339)
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Op:        op,
				Platform:  req.Platform,
				LatencyMs: latency,
				Success:   true,
			})
			return &Response{
				PostID:    resp.PostID,
				Confirmed: resp.Confirmed,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or hard rejection.
		if ctx.Err() != nil || errors.Is(err, ErrRejected) {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		Platform:  req.Platform,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, lastErr
}

func (c *httpClient) doRequest(ctx context.Context, body publishRequest) (*publishResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/v1/publish"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusOK:
	case httpResp.StatusCode >= 400 && httpResp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, httpResp.StatusCode, string(respBody))
	default:
		return nil, fmt.Errorf("publisher returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp publishResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	if !c.cfg.Enabled {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/v1/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// isConnectionError reports whether err looks like a failure to reach the
// endpoint at all, as opposed to a response-level error.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRejected):
		return "rejected"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "error"
	}
}
