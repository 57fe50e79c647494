// Package scrape orchestrates the extraction pipeline: resolve the publisher,
// fetch the page, then derive title and body through site-specific selectors
// with generic fallbacks.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/haniljang/newsbrief/internal/extract"
	"github.com/haniljang/newsbrief/internal/selector"
	"github.com/haniljang/newsbrief/internal/sites"
)

// Article is the extraction result for one URL. It is built fresh per request
// and never persisted.
type Article struct {
	URL         string
	Title       string
	Content     string
	ExtractedAt time.Time
}

// ErrNoTitle reports that no strategy produced a usable headline.
var ErrNoTitle = errors.New("no qualifying article title")

// ErrNoContent reports that both site-specific and generic extraction came up
// empty. This replaces the reference behavior of returning a placeholder
// string the caller had to compare against.
var ErrNoContent = errors.New("no qualifying article content")

// MinTitleLen is the smallest accepted headline length, in runes.
const MinTitleLen = 5

// MaxContentRunes caps the returned body; longer articles are cut with a
// trailing ellipsis to stay inside summarization token limits.
const MaxContentRunes = 8000

// Fetcher retrieves a page body as UTF-8 text.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (string, error)
}

// Scraper fetches and extracts one article per call. It holds only read-only
// tables, so concurrent use needs no locking.
type Scraper struct {
	Fetcher Fetcher
	Sites   *sites.Resolver
	// RequireSupported, when true, rejects domains outside the
	// supported-site table before any network attempt.
	RequireSupported bool
}

// Scrape runs the full pipeline for rawURL.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Article, error) {
	site, err := s.Sites.Resolve(rawURL)
	if err != nil {
		return Article{}, err
	}
	if s.RequireSupported && !site.Supported {
		return Article{}, &sites.UnsupportedError{Domain: site.Domain}
	}

	html, err := s.Fetcher.Get(ctx, rawURL)
	if err != nil {
		return Article{}, fmt.Errorf("fetch article: %w", err)
	}
	log.Debug().Str("domain", site.Domain).Str("key", site.Key).
		Int("bytes", len(html)).Msg("article page fetched")

	title := resolveTitle(html, site.Profile)
	if utf8.RuneCountInString(title) < MinTitleLen {
		return Article{}, ErrNoTitle
	}

	content := resolveContent(html, site.Profile)
	if content == "" {
		return Article{}, ErrNoContent
	}
	if utf8.RuneCountInString(content) > MaxContentRunes {
		content = string([]rune(content)[:MaxContentRunes]) + "..."
	}

	log.Debug().Str("title", title).Int("contentRunes", utf8.RuneCountInString(content)).
		Msg("article extracted")
	return Article{URL: rawURL, Title: title, Content: content, ExtractedAt: time.Now()}, nil
}

// resolveContent prefers the publisher's selector profile and falls back to
// the generic pattern ladder.
func resolveContent(html string, profile *sites.Profile) string {
	if profile != nil {
		if text := selector.Extract(html, profile.ContentSelectors); text != "" {
			return text
		}
	}
	return extract.Generic(html)
}
