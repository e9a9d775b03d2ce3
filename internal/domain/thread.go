package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ThreadSeparator joins thread segments into the denormalized flat content
// used for search and non-thread contexts.
const ThreadSeparator = "\n\n---\n\n"

const (
	// MaxSegmentRunes is the per-segment character limit.
	MaxSegmentRunes = 280
	// MaxSegmentMedia is the per-segment image attachment limit.
	MaxSegmentMedia = 4
)

// ThreadSegment is one tweet-sized unit of a thread item.
type ThreadSegment struct {
	Text      string   `json:"text"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

// Validate checks the segment limits.
func (s ThreadSegment) Validate() error {
	if n := utf8.RuneCountInString(s.Text); n > MaxSegmentRunes {
		return fmt.Errorf("segment is %d characters, limit is %d", n, MaxSegmentRunes)
	}
	if len(s.MediaURLs) > MaxSegmentMedia {
		return fmt.Errorf("segment has %d images, limit is %d", len(s.MediaURLs), MaxSegmentMedia)
	}
	return nil
}

// FlattenThread builds the canonical flat content for a thread: the segment
// texts joined in order by ThreadSeparator. The structured segments remain
// the source of truth in the item metadata.
func FlattenThread(segments []ThreadSegment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, ThreadSeparator)
}

// ValidateThread validates every segment of a thread.
func ValidateThread(segments []ThreadSegment) error {
	for i, s := range segments {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("thread segment %d: %w", i+1, err)
		}
	}
	return nil
}
