package sites

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haniljang/newsbrief/internal/selector"
)

func TestIsSupported_DomainVariants(t *testing.T) {
	r := Default()
	for _, e := range r.Entries() {
		if !r.IsSupported(e.Domain) {
			t.Errorf("bare domain %s not supported", e.Domain)
		}
		if !r.IsSupported("www." + e.Domain) {
			t.Errorf("www variant of %s not supported", e.Domain)
		}
		if !r.IsSupported("news." + e.Domain) {
			t.Errorf("subdomain of %s not supported", e.Domain)
		}
	}
	if r.IsSupported("example.org") {
		t.Errorf("example.org should not be supported")
	}
}

func TestResolve_NaverSubdomain(t *testing.T) {
	r := Default()
	site, err := r.Resolve("https://n.news.naver.com/article/001/000001")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if site.Domain != "n.news.naver.com" {
		t.Fatalf("domain = %q", site.Domain)
	}
	if site.Key != "naver" {
		t.Fatalf("key = %q, want naver", site.Key)
	}
	if site.Profile == nil {
		t.Fatalf("expected a naver profile")
	}
	if !site.Supported {
		t.Fatalf("expected naver subdomain to be supported")
	}
}

func TestResolve_StripsWWW(t *testing.T) {
	r := Default()
	site, err := r.Resolve("https://www.hani.co.kr/arti/society/123.html")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if site.Domain != "hani.co.kr" {
		t.Fatalf("domain = %q, want hani.co.kr", site.Domain)
	}
	if site.Key != "hani" {
		t.Fatalf("key = %q", site.Key)
	}
}

func TestResolve_UnknownDomainHasNoProfile(t *testing.T) {
	r := Default()
	site, err := r.Resolve("https://example.org/post/1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if site.Supported || site.Key != "" || site.Profile != nil {
		t.Fatalf("expected unsupported site with no profile, got %+v", site)
	}
}

func TestResolve_InvalidURL(t *testing.T) {
	r := Default()
	for _, raw := range []string{"", "not a url", "ftp://example.org/x", "naver.com/article"} {
		if _, err := r.Resolve(raw); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Resolve(%q) err = %v, want ErrInvalidURL", raw, err)
		}
	}
}

func TestKey_FirstTokenWins(t *testing.T) {
	r := Default()
	if got := r.Key("media.daum.net"); got != "daum" {
		t.Fatalf("Key = %q", got)
	}
	if got := r.Key("khan.co.kr"); got != "khan" {
		t.Fatalf("Key = %q", got)
	}
	if got := r.Key("hankyung.com"); got != "hankyung" {
		t.Fatalf("Key = %q", got)
	}
	if got := r.Key("unrelated.example"); got != "" {
		t.Fatalf("Key = %q, want empty", got)
	}
}

func TestUnsupportedError_ListsPublishers(t *testing.T) {
	err := &UnsupportedError{Domain: "example.org"}
	msg := err.Error()
	if !strings.Contains(msg, "example.org") || !strings.Contains(msg, "naver.com") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestFromFile_OverridesTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sites.yaml")
	doc := `sites:
  - domain: example-news.co.kr
    name: Example News
    key: examplenews
    title:
      - class: headline
    content:
      - id: story-body
      - tag: article
  - domain: plain.example
    name: Plain
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !r.IsSupported("www.example-news.co.kr") {
		t.Fatalf("override domain not supported")
	}
	if r.IsSupported("naver.com") {
		t.Fatalf("defaults should be replaced, not merged")
	}
	p := r.Profile("examplenews")
	if p == nil {
		t.Fatalf("missing profile")
	}
	if len(p.ContentSelectors) != 2 || p.ContentSelectors[0] != selector.ByID("story-body") {
		t.Fatalf("content selectors = %+v", p.ContentSelectors)
	}
	if r.Profile("missing") != nil {
		t.Fatalf("unexpected profile")
	}
}

func TestFromFile_RejectsAmbiguousSelector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sites.yaml")
	doc := `sites:
  - domain: x.example
    key: x
    title:
      - id: a
        class: b
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(path); err == nil {
		t.Fatalf("expected an error for ambiguous selector")
	}
}
