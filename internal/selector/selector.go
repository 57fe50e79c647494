// Package selector locates markup fragments by simplified id/class/tag rules.
// There are no combinators, attribute predicates, or nesting: a selector names
// either an exact id, a class-attribute substring, or a bare element name.
package selector

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/haniljang/newsbrief/internal/htmltext"
)

// Kind discriminates the selector variants.
type Kind int

const (
	KindID Kind = iota
	KindClass
	KindTag
)

// Spec is a single match rule. Build values with ByID, ByClass, or ByTag.
type Spec struct {
	Kind  Kind
	Value string
}

// ByID matches the first element whose id attribute equals id.
func ByID(id string) Spec { return Spec{Kind: KindID, Value: id} }

// ByClass matches the first element whose class attribute contains name as a
// substring. Containment is deliberate and can over-match: searching "content"
// also hits class="sub-content-wrapper".
func ByClass(name string) Spec { return Spec{Kind: KindClass, Value: name} }

// ByTag matches the first element with the given name.
func ByTag(tag string) Spec { return Spec{Kind: KindTag, Value: tag} }

// MinTextLen is the qualifying length for extracted text, in runes.
const MinTextLen = 20

// Extract tries specs in order and returns the first normalized inner text
// longer than MinTextLen. Order is a priority: later specs are never examined
// once one qualifies. Returns "" when nothing qualifies.
func Extract(html string, specs []Spec) string {
	for _, sp := range specs {
		frag, ok := Capture(html, sp)
		if !ok {
			continue
		}
		text := htmltext.Clean(frag)
		if utf8.RuneCountInString(text) > MinTextLen {
			return text
		}
	}
	return ""
}

// Text returns the normalized inner text of the first element matching sp,
// with no length floor applied, or "" when nothing matches.
func Text(html string, sp Spec) string {
	frag, ok := Capture(html, sp)
	if !ok {
		return ""
	}
	return htmltext.Clean(frag)
}

// Capture returns the inner markup of the first element matching sp. The
// capture runs from the opening tag to the first closing tag of the same
// element name, so nested same-name elements are cut short. That mirrors the
// reference scraper and is kept as a known limitation rather than fixed.
func Capture(html string, sp Spec) (string, bool) {
	var open *regexp.Regexp
	switch sp.Kind {
	case KindID:
		open = regexp.MustCompile(`(?is)<([a-z][a-z0-9]*)\b[^>]*\bid\s*=\s*["']` +
			regexp.QuoteMeta(sp.Value) + `["'][^>]*>`)
	case KindClass:
		open = regexp.MustCompile(`(?is)<([a-z][a-z0-9]*)\b[^>]*\bclass\s*=\s*["'][^"']*` +
			regexp.QuoteMeta(sp.Value) + `[^"']*["'][^>]*>`)
	case KindTag:
		open = regexp.MustCompile(`(?is)<(` + regexp.QuoteMeta(sp.Value) + `)\b[^>]*>`)
	default:
		return "", false
	}
	loc := open.FindStringSubmatchIndex(html)
	if loc == nil {
		return "", false
	}
	tag := strings.ToLower(html[loc[2]:loc[3]])
	rest := html[loc[1]:]
	closeRe := regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(tag) + `\s*>`)
	end := closeRe.FindStringIndex(rest)
	if end == nil {
		return "", false
	}
	return rest[:end[0]], true
}
