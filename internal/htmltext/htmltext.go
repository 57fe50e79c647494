// Package htmltext reduces markup fragments to plain text. It is not an HTML
// parser: tags are removed by pattern matching and only the handful of
// entities that show up in news markup are decoded.
package htmltext

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// entityReplacer decodes the six entities the extractor cares about. Anything
// rarer passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
)

// Clean strips tags from fragment, decodes common entities, and collapses all
// whitespace runs to single spaces. It never fails; the result may be empty.
//
// Clean is idempotent on already-normalized text. Entity-encoded markup is
// not a fixed point: "&lt;b&gt;" decodes to "<b>", which a second pass would
// strip as a tag. Callers run Clean once per fragment.
func Clean(fragment string) string {
	s := tagRe.ReplaceAllString(fragment, "")
	s = entityReplacer.Replace(s)
	return CollapseSpaces(s)
}

// CollapseSpaces folds runs of whitespace, including newlines and tabs, into
// single spaces and trims the ends.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' ' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
