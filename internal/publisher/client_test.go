package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.Token = "test-token"
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 1
	return cfg
}

func TestHTTPClient_Publish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/publish", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "twitter", body["platform"])
		assert.Equal(t, "hello world", body["content"])
		assert.NotContains(t, body, "scheduled_for")

		json.NewEncoder(w).Encode(map[string]any{"post_id": "p-123", "confirmed": false})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), nil)
	resp, err := c.Publish(context.Background(), Request{
		Platform: domain.PlatformTwitter,
		Content:  "hello world",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-123", resp.PostID)
	assert.False(t, resp.Confirmed)
}

func TestHTTPClient_PublishScheduled(t *testing.T) {
	at := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-09-05T10:00:00Z", body["scheduled_for"])
		json.NewEncoder(w).Encode(map[string]any{"post_id": "p-9", "confirmed": true})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), nil)
	resp, err := c.Publish(context.Background(), Request{
		Platform:     domain.PlatformTwitter,
		Content:      "later",
		ScheduledFor: &at,
	})
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
}

func TestHTTPClient_PublishRejected(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad platform", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), nil)
	_, err := c.Publish(context.Background(), Request{Platform: domain.PlatformTwitter, Content: "x"})
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(1), calls.Load(), "4xx responses are not retried")
}

func TestHTTPClient_PublishRetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"post_id": "p-2"})
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), nil)
	resp, err := c.Publish(context.Background(), Request{Platform: domain.PlatformTwitter, Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "p-2", resp.PostID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_PublishDisabled(t *testing.T) {
	c := NewHTTPClient(DefaultConfig(), nil)
	_, err := c.Publish(context.Background(), Request{Platform: domain.PlatformTwitter, Content: "x"})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestHTTPClient_PublishUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewHTTPClient(testConfig(srv.URL), nil)
	_, err := c.Publish(context.Background(), Request{Platform: domain.PlatformTwitter, Content: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), nil)
	assert.True(t, c.Available(context.Background()))

	disabled := NewHTTPClient(DefaultConfig(), nil)
	assert.False(t, disabled.Available(context.Background()))
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)
	obs.OnCallComplete(CallEvent{Op: "publish", Platform: domain.PlatformTwitter, LatencyMs: 12, Success: true})
	obs.OnCallComplete(CallEvent{Op: "schedule", Platform: domain.PlatformTwitter, Success: false, ErrorCode: "rejected"})

	out := buf.String()
	assert.Contains(t, out, "op=publish platform=twitter latency_ms=12 status=ok")
	assert.Contains(t, out, "op=schedule")
	assert.Contains(t, out, "status=err:rejected")
}
