// Package summarize produces a short summary of an extracted article. An
// OpenAI-compatible model is used when configured; the deterministic
// extractive scorer below is always available as the fallback, so
// summarization never fails once there is enough content.
package summarize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSentences is how many sentences an extractive summary keeps.
const DefaultMaxSentences = 5

// minSentenceRunes drops fragments too short to carry a fact.
const minSentenceRunes = 15

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?。！？]+`)
	tokenRe         = regexp.MustCompile(`[가-힣a-zA-Z0-9]+`)
	numericRe       = regexp.MustCompile(`^[0-9\s.,%]+$`)
)

// stopWords are Korean particles and conjunctions that would otherwise
// dominate the frequency table. Single-character tokens are excluded
// separately.
var stopWords = map[string]struct{}{
	"그리고": {}, "그러나": {}, "하지만": {}, "따라서": {}, "그래서": {},
	"또한": {}, "한편": {}, "이번": {}, "지난": {}, "대한": {}, "위해": {},
	"통해": {}, "대해": {}, "관련": {}, "에서": {}, "으로": {}, "까지": {},
	"부터": {}, "보다": {}, "하며": {}, "하고": {}, "있다": {}, "있는": {},
	"했다": {}, "된다": {}, "라고": {}, "이라고": {}, "면서": {}, "것으로": {},
}

// sentence is the transient scoring unit; it lives only for one call.
type sentence struct {
	text  string
	index int
	score float64
}

// Extractive selects the maxSentences highest-scoring sentences of content
// and re-joins them in original order. It is pure and deterministic; all
// working tables are scoped to the call. maxSentences <= 0 means
// DefaultMaxSentences.
func Extractive(content string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= maxSentences {
		return joinSentences(sentences)
	}

	freq := wordFrequencies(content)
	total := len(sentences)
	for i := range sentences {
		s := &sentences[i]
		s.score = keywordScore(s.text, freq) * positionScore(s.index, total) * lengthScore(s.text)
	}

	// Top maxSentences by score; ties keep original order, and the final
	// selection is restored to narrative order.
	ranked := make([]sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	picked := ranked[:maxSentences]
	sort.Slice(picked, func(i, j int) bool { return picked[i].index < picked[j].index })

	return joinSentences(picked)
}

// splitSentences cuts content on terminal punctuation and filters out
// fragments that are too short, purely numeric, or copyright boilerplate.
func splitSentences(content string) []sentence {
	parts := sentenceSplitRe.Split(content, -1)
	var out []sentence
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= minSentenceRunes {
			continue
		}
		if numericRe.MatchString(p) {
			continue
		}
		if strings.ContainsAny(p, "©ⓒ") {
			continue
		}
		out = append(out, sentence{text: p, index: len(out)})
	}
	return out
}

func joinSentences(ss []sentence) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.text
	}
	return strings.Join(parts, ". ") + "."
}

// wordFrequencies counts keyword occurrences over the whole content. Latin
// tokens are case-folded; single-character tokens and stop words are skipped.
func wordFrequencies(content string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range tokenize(content) {
		freq[tok]++
	}
	return freq
}

func tokenize(s string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(s), -1)
	out := raw[:0]
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// keywordScore averages token frequencies instead of summing them, so long
// sentences gain no advantage from sheer token count.
func keywordScore(text string, freq map[string]int) float64 {
	toks := tokenize(text)
	if len(toks) == 0 {
		return 0
	}
	sum := 0
	for _, tok := range toks {
		sum += freq[tok]
	}
	return float64(sum) / float64(len(toks))
}

// positionScore decays linearly from 1.0 to 0.7 across the article, favoring
// the lede the way news writing front-loads facts.
func positionScore(index, total int) float64 {
	return 1 - float64(index)/float64(total)*0.3
}

// lengthScore mildly penalizes outlier sentence lengths.
func lengthScore(text string) float64 {
	n := utf8.RuneCountInString(text)
	if n > 30 && n < 200 {
		return 1.0
	}
	return 0.7
}
