package scrape

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/haniljang/newsbrief/internal/extract"
	"github.com/haniljang/newsbrief/internal/htmltext"
	"github.com/haniljang/newsbrief/internal/selector"
	"github.com/haniljang/newsbrief/internal/sites"
)

// og:title can carry its attributes in either order.
var ogTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<meta\b[^>]*\bproperty\s*=\s*["']og:title["'][^>]*\bcontent\s*=\s*["']([^"']*)["']`),
	regexp.MustCompile(`(?is)<meta\b[^>]*\bcontent\s*=\s*["']([^"']*)["'][^>]*\bproperty\s*=\s*["']og:title["']`),
}

// genericTitlePatterns is the fixed heading ladder used when nothing better
// qualified: class-hinted headings first, bare tags last.
var genericTitlePatterns = []struct {
	tag      string
	classSub string
}{
	{tag: "h1", classSub: "title"},
	{tag: "h1", classSub: "headline"},
	{tag: "h2", classSub: "title"},
	{tag: "h2", classSub: "headline"},
	{tag: "h1"},
	{tag: "h2"},
}

// resolveTitle walks the title ladder. Every later step overwrites the
// current candidate only when it succeeds.
func resolveTitle(html string, profile *sites.Profile) string {
	// (a) literal <title>, minus the usual " - sitename" suffix.
	title := stripSiteSuffix(selector.Text(html, selector.ByTag("title")))

	// (b) Open Graph titles are curated by the publisher and win over (a).
	if og := ogTitle(html); og != "" {
		title = og
	}

	// (c) site-specific headline selectors.
	if profile != nil {
		for _, sp := range profile.TitleSelectors {
			if t := selector.Text(html, sp); utf8.RuneCountInString(t) > 3 {
				title = t
				break
			}
		}
	}

	// (d) an empty title, or one still carrying separator characters, means
	// the suffix strip did not take; try the generic heading patterns.
	if title == "" || strings.ContainsAny(title, "|-") {
		for _, p := range genericTitlePatterns {
			t := extract.FirstText(html, p.tag, p.classSub)
			n := utf8.RuneCountInString(t)
			if n >= MinTitleLen && n <= 200 && !looksLikeURL(t) {
				title = t
				break
			}
		}
	}
	return title
}

func ogTitle(html string) string {
	for _, re := range ogTitleRes {
		if m := re.FindStringSubmatch(html); m != nil {
			if t := htmltext.Clean(m[1]); t != "" {
				return t
			}
		}
	}
	return ""
}

// stripSiteSuffix removes a trailing " - sitename" segment from a page title.
func stripSiteSuffix(title string) string {
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return title
}

func looksLikeURL(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "http://") || strings.Contains(s, "https://") ||
		strings.Contains(s, "www.")
}
