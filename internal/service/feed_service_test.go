package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pautahq/pauta/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_Preview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss><channel>
			<item><title>one</title></item>
			<item><title>two</title></item>
		</channel></rss>`))
	}))
	defer srv.Close()

	svc := NewFeedService(feed.NewFetcher(5 * time.Second))
	ctx := context.Background()

	items, err := svc.Preview(ctx, srv.URL, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Title)

	_, err = svc.Preview(ctx, "ftp://example.com/feed", 0)
	assert.ErrorContains(t, err, "must be http or https")
}
