// Package extract pulls article body text out of pages from publishers we
// have no selector profile for. It walks a fixed ladder of container patterns
// and falls back to aggregating paragraph tags.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/haniljang/newsbrief/internal/htmltext"
)

// MinContentLen is the qualifying length for generic content, in runes.
// Shorter matches are treated as navigation or teaser fragments and skipped.
const MinContentLen = 100

// MinParagraphLen filters out caption- and byline-sized paragraphs during
// aggregation, in runes.
const MinParagraphLen = 20

// MinParagraphs is the smallest paragraph count the aggregation fallback
// accepts as a real article body.
const MinParagraphs = 3

type pattern struct {
	tag      string
	classSub string // empty means a bare tag match
}

// genericLadder is tried in order; the first container whose normalized text
// clears MinContentLen wins.
var genericLadder = []pattern{
	{tag: "article"},
	{tag: "div", classSub: "content"},
	{tag: "div", classSub: "article"},
	{tag: "div", classSub: "body"},
	{tag: "div", classSub: "txt"},
	{tag: "section", classSub: "article"},
	{tag: "main"},
}

var paragraphRe = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p\s*>`)

// Generic extracts body text from html without site knowledge. It returns ""
// when no strategy produces qualifying content; callers treat that as total
// extraction failure.
func Generic(html string) string {
	for _, p := range genericLadder {
		frag, ok := captureFirst(html, p)
		if !ok {
			continue
		}
		text := htmltext.Clean(frag)
		if utf8.RuneCountInString(text) > MinContentLen {
			return text
		}
	}
	return aggregateParagraphs(html)
}

// FirstText returns the normalized inner text of the first element with the
// given tag whose class attribute contains classSub; an empty classSub matches
// the bare tag. Returns "" when nothing matches. No length floor is applied.
func FirstText(html, tag, classSub string) string {
	frag, ok := captureFirst(html, pattern{tag: tag, classSub: classSub})
	if !ok {
		return ""
	}
	return htmltext.Clean(frag)
}

// captureFirst grabs the inner markup of the first element matching p, up to
// the first closing tag of the same name. Nested same-name elements truncate
// the capture; the selector package documents the same limitation.
func captureFirst(html string, p pattern) (string, bool) {
	expr := `(?is)<` + regexp.QuoteMeta(p.tag) + `\b[^>]*>`
	if p.classSub != "" {
		expr = `(?is)<` + regexp.QuoteMeta(p.tag) + `\b[^>]*\bclass\s*=\s*["'][^"']*` +
			regexp.QuoteMeta(p.classSub) + `[^"']*["'][^>]*>`
	}
	loc := regexp.MustCompile(expr).FindStringIndex(html)
	if loc == nil {
		return "", false
	}
	rest := html[loc[1]:]
	end := regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(p.tag) + `\s*>`).FindStringIndex(rest)
	if end == nil {
		return "", false
	}
	return rest[:end[0]], true
}

// aggregateParagraphs joins every paragraph longer than MinParagraphLen with
// single spaces. The combined text qualifies only when at least MinParagraphs
// paragraphs contributed and the total clears MinContentLen.
func aggregateParagraphs(html string) string {
	matches := paragraphRe.FindAllStringSubmatch(html, -1)
	var parts []string
	for _, m := range matches {
		text := htmltext.Clean(m[1])
		if utf8.RuneCountInString(text) > MinParagraphLen {
			parts = append(parts, text)
		}
	}
	if len(parts) < MinParagraphs {
		return ""
	}
	joined := strings.Join(parts, " ")
	if utf8.RuneCountInString(joined) <= MinContentLen {
		return ""
	}
	return joined
}
