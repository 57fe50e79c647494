package selector

import (
	"strings"
	"testing"
)

const longKorean = "기사 본문은 충분히 길어야 선택자 추출을 통과한다 오늘 발표된 내용에 따르면 시장은 빠르게 반응했다"

func TestExtract_ByID(t *testing.T) {
	html := `<html><body><div id="dic_area">` + longKorean + `</div></body></html>`
	got := Extract(html, []Spec{ByID("dic_area")})
	if got != longKorean {
		t.Fatalf("Extract() = %q, want %q", got, longKorean)
	}
}

func TestExtract_ByClassSubstring(t *testing.T) {
	html := `<div class="news-article-body">` + longKorean + `</div>`
	got := Extract(html, []Spec{ByClass("article-body")})
	if got != longKorean {
		t.Fatalf("Extract() = %q", got)
	}
}

func TestExtract_ByTag(t *testing.T) {
	html := `<p>short</p><article>` + longKorean + `</article>`
	got := Extract(html, []Spec{ByTag("article")})
	if got != longKorean {
		t.Fatalf("Extract() = %q", got)
	}
}

func TestExtract_OrderIsPriority(t *testing.T) {
	first := strings.Repeat("first ", 10)
	second := strings.Repeat("second ", 10)
	html := `<div id="a">` + first + `</div><div id="b">` + second + `</div>`
	got := Extract(html, []Spec{ByID("a"), ByID("b")})
	if !strings.HasPrefix(got, "first") {
		t.Fatalf("expected the first qualifying selector to win, got %q", got)
	}
	// Reversed order must flip the winner.
	got = Extract(html, []Spec{ByID("b"), ByID("a")})
	if !strings.HasPrefix(got, "second") {
		t.Fatalf("expected reversed priority to win, got %q", got)
	}
}

func TestExtract_SkipsTooShortMatches(t *testing.T) {
	html := `<div id="a">tiny</div><div id="b">` + longKorean + `</div>`
	got := Extract(html, []Spec{ByID("a"), ByID("b")})
	if got != longKorean {
		t.Fatalf("expected fall-through past short match, got %q", got)
	}
}

func TestExtract_MinLengthIsRunes(t *testing.T) {
	// 21 Hangul syllables are 63 bytes but must count as 21 characters.
	text := strings.Repeat("가", 21)
	html := `<div id="k">` + text + `</div>`
	if got := Extract(html, []Spec{ByID("k")}); got != text {
		t.Fatalf("expected rune-based threshold to pass, got %q", got)
	}
	html = `<div id="k">` + strings.Repeat("가", 20) + `</div>`
	if got := Extract(html, []Spec{ByID("k")}); got != "" {
		t.Fatalf("expected exactly-20 runes to fail, got %q", got)
	}
}

func TestExtract_NoMatchReturnsEmpty(t *testing.T) {
	if got := Extract("<div>nothing here</div>", []Spec{ByID("missing"), ByClass("absent")}); got != "" {
		t.Fatalf("Extract() = %q, want empty", got)
	}
}

func TestExtract_CaseInsensitiveTags(t *testing.T) {
	html := `<DIV ID="dic_area">` + longKorean + `</DIV>`
	if got := Extract(html, []Spec{ByID("dic_area")}); got != longKorean {
		t.Fatalf("Extract() = %q", got)
	}
}

func TestCapture_NestedSameTagStopsAtFirstClose(t *testing.T) {
	// Known limitation: the capture ends at the first closing div, not the
	// structurally matching one.
	html := `<div id="outer"><div>inner</div>tail text after inner close</div>`
	frag, ok := Capture(html, ByID("outer"))
	if !ok {
		t.Fatalf("expected a capture")
	}
	if strings.Contains(frag, "tail text") {
		t.Fatalf("capture crossed the first closing tag: %q", frag)
	}
	if frag != "<div>inner" {
		t.Fatalf("capture = %q, want %q", frag, "<div>inner")
	}
}

func TestCapture_DoesNotMatchLongerTagName(t *testing.T) {
	html := `<p>one</pre></p>`
	frag, ok := Capture(html, ByTag("p"))
	if !ok {
		t.Fatalf("expected a capture")
	}
	if frag != "one</pre>" {
		t.Fatalf("capture = %q, want %q", frag, "one</pre>")
	}
}
