package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pautahq/pauta/internal/feed"
)

type feedService struct {
	fetcher *feed.Fetcher
}

func NewFeedService(fetcher *feed.Fetcher) FeedService {
	return &feedService{fetcher: fetcher}
}

func (s *feedService) Preview(ctx context.Context, url string, limit int) ([]feed.Item, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("feed url must be http or https")
	}
	if limit <= 0 {
		limit = 10
	}
	return s.fetcher.Fetch(ctx, url, limit)
}
