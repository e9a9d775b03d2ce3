package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pautahq/pauta/internal/assist"
	"github.com/pautahq/pauta/internal/domain"
)

type generationService struct {
	client   assist.Client
	observer UseCaseObserver
}

func NewGenerationService(client assist.Client, observer UseCaseObserver) GenerationService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &generationService{client: client, observer: observer}
}

// DraftContent fills the item in place from the generation service. Thread
// items get their generated text split back into segments so the thread
// editor can pick it up.
func (s *generationService) DraftContent(ctx context.Context, item *domain.PlanningItem, reference string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "generation_text", start, err, map[string]any{"content_type": item.ContentType})
	}()

	if item.Title == "" {
		return fmt.Errorf("item needs a title to draft from")
	}

	resp, err := s.client.GenerateText(ctx, assist.TextRequest{
		Title:       item.Title,
		ContentType: item.ContentType,
		Reference:   reference,
	})
	if err != nil {
		return err
	}

	item.Content = resp.Content
	if len(resp.Images) > 0 {
		item.MediaURLs = append(item.MediaURLs, resp.Images...)
	}

	if item.IsThread() {
		var segments []domain.ThreadSegment
		for _, part := range strings.Split(resp.Content, domain.ThreadSeparator) {
			if part = strings.TrimSpace(part); part != "" {
				segments = append(segments, domain.ThreadSegment{Text: part})
			}
		}
		if len(segments) > 0 {
			item.Metadata.ThreadTweets = segments
		}
	}
	return nil
}

func (s *generationService) DraftImage(ctx context.Context, item *domain.PlanningItem, style string) (url string, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "generation_image", start, err, nil)
	}()

	if item.Content == "" {
		return "", fmt.Errorf("item needs content to illustrate")
	}
	return s.client.GenerateImage(ctx, assist.ImageRequest{
		Content:  item.Content,
		Platform: item.Platform,
		Style:    style,
	})
}
