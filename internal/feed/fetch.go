// Package feed fetches and parses RSS feeds for automation previews: the
// pieces of a feed entry that seed a planning item draft.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Item is one parsed feed entry.
type Item struct {
	Title       string
	Description string
	Link        string
	Images      []string
	Content     string
	PublishedAt *time.Time
}

// Fetcher retrieves and parses RSS feeds.
type Fetcher struct {
	http *http.Client
}

// NewFetcher creates a Fetcher with the given timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{http: &http.Client{Timeout: timeout}}
}

// rss mirrors the subset of RSS 2.0 the previews need.
type rss struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Content     string `xml:"encoded"` // content:encoded
	Enclosure   struct {
		URL  string `xml:"url,attr"`
		Type string `xml:"type,attr"`
	} `xml:"enclosure"`
	MediaContent []struct {
		URL string `xml:"url,attr"`
	} `xml:"content"`
}

// Fetch downloads and parses the feed at url, returning at most limit items
// (0 means all).
func (f *Fetcher) Fetch(ctx context.Context, url string, limit int) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading feed body: %w", err)
	}

	return Parse(body, limit)
}

// Parse decodes raw RSS bytes into feed items.
func Parse(raw []byte, limit int) ([]Item, error) {
	var doc rss
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing feed xml: %w", err)
	}

	items := make([]Item, 0, len(doc.Channel.Items))
	for _, ri := range doc.Channel.Items {
		if limit > 0 && len(items) >= limit {
			break
		}
		item := Item{
			Title:       strings.TrimSpace(ri.Title),
			Description: stripTags(ri.Description),
			Link:        strings.TrimSpace(ri.Link),
			Content:     ri.Content,
		}
		if strings.HasPrefix(ri.Enclosure.Type, "image/") && ri.Enclosure.URL != "" {
			item.Images = append(item.Images, ri.Enclosure.URL)
		}
		for _, mc := range ri.MediaContent {
			if mc.URL != "" {
				item.Images = append(item.Images, mc.URL)
			}
		}
		item.Images = append(item.Images, inlineImages(ri.Content)...)
		if ri.PubDate != "" {
			if t, err := parsePubDate(ri.PubDate); err == nil {
				item.PublishedAt = &t
			}
		}
		items = append(items, item)
	}
	return items, nil
}

var (
	tagPattern = regexp.MustCompile(`<[^>]+>`)
	imgPattern = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)
)

// stripTags removes markup from description snippets.
func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// inlineImages extracts img src URLs embedded in encoded content.
func inlineImages(html string) []string {
	var urls []string
	for _, m := range imgPattern.FindAllStringSubmatch(html, -1) {
		urls = append(urls, m[1])
	}
	return urls
}

// parsePubDate tries the date formats feeds actually emit.
func parsePubDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
