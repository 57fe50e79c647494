// Package sites maps article URLs to known Korean news publishers and their
// selector profiles. The tables are immutable after process start; lookup is
// substring containment with declaration order as priority.
package sites

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/haniljang/newsbrief/internal/selector"
)

// ErrInvalidURL reports a malformed or non-HTTP article URL. No network
// attempt is made for these.
var ErrInvalidURL = errors.New("invalid article URL")

// UnsupportedError reports a domain outside the supported-publisher table.
type UnsupportedError struct {
	Domain string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported site %q; supported publishers: %s",
		e.Domain, strings.Join(SupportedDomains(), ", "))
}

// Profile bundles a publisher's title and content selector priority lists.
type Profile struct {
	Key              string
	TitleSelectors   []selector.Spec
	ContentSelectors []selector.Spec
}

// Site is the result of resolving an article URL. Key and Profile are zero
// when the domain has no publisher profile; Supported reflects the
// supported-site table, which is a separate, wider gate.
type Site struct {
	Domain    string
	Key       string
	Profile   *Profile
	Supported bool
}

// Entry is one row of the supported-site table.
type Entry struct {
	Domain string `yaml:"domain" json:"domain"`
	Name   string `yaml:"name" json:"name"`
}

// Resolver answers domain questions against a fixed table set. The zero value
// is unusable; use Default or FromFile.
type Resolver struct {
	entries  []Entry
	tokens   []string
	profiles map[string]*Profile
}

// Default returns a resolver over the built-in publisher tables.
func Default() *Resolver {
	return &Resolver{entries: defaultEntries, tokens: defaultTokens, profiles: defaultProfiles}
}

// Resolve parses rawURL and classifies its hostname. A leading "www." is not
// significant and is stripped before lookup.
func (r *Resolver) Resolve(rawURL string) (Site, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Site{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	domain := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	key := r.Key(domain)
	var p *Profile
	if key != "" {
		p = r.profiles[key]
	}
	return Site{Domain: domain, Key: key, Profile: p, Supported: r.IsSupported(domain)}, nil
}

// IsSupported reports whether domain belongs to a supported publisher: it must
// equal, or contain as a substring, one of the table keys. Subdomains like
// n.news.naver.com therefore pass via the naver.com key.
func (r *Resolver) IsSupported(domain string) bool {
	domain = strings.ToLower(domain)
	for _, e := range r.entries {
		if domain == e.Domain || strings.Contains(domain, e.Domain) {
			return true
		}
	}
	return false
}

// Key matches domain against the publisher token list in declared order and
// returns the first containing match, or "".
func (r *Resolver) Key(domain string) string {
	domain = strings.ToLower(domain)
	for _, tok := range r.tokens {
		if strings.Contains(domain, tok) {
			return tok
		}
	}
	return ""
}

// Profile returns the selector profile for a publisher key, or nil.
func (r *Resolver) Profile(key string) *Profile {
	return r.profiles[key]
}

// Entries returns the supported-site table in stable order.
func (r *Resolver) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// SupportedDomains lists the built-in table's domains for error messages.
func SupportedDomains() []string {
	out := make([]string, len(defaultEntries))
	for i, e := range defaultEntries {
		out[i] = e.Domain
	}
	return out
}

var defaultEntries = []Entry{
	{Domain: "naver.com", Name: "네이버 뉴스"},
	{Domain: "daum.net", Name: "다음 뉴스"},
	{Domain: "chosun.com", Name: "조선일보"},
	{Domain: "joongang.co.kr", Name: "중앙일보"},
	{Domain: "donga.com", Name: "동아일보"},
	{Domain: "hani.co.kr", Name: "한겨레"},
	{Domain: "khan.co.kr", Name: "경향신문"},
	{Domain: "hankyung.com", Name: "한국경제"},
	{Domain: "mk.co.kr", Name: "매일경제"},
	{Domain: "newsis.com", Name: "뉴시스"},
	{Domain: "ytn.co.kr", Name: "YTN"},
	{Domain: "sbs.co.kr", Name: "SBS"},
	{Domain: "kbs.co.kr", Name: "KBS"},
}

// defaultTokens is ordered: more specific publisher strings come before ones
// that could swallow them as substrings.
var defaultTokens = []string{
	"naver", "daum", "chosun", "joongang", "donga", "hani", "khan",
	"hankyung", "mk.co", "newsis", "ytn", "sbs", "kbs",
}

var defaultProfiles = map[string]*Profile{
	"naver": {
		Key: "naver",
		TitleSelectors: []selector.Spec{
			selector.ByClass("media_end_head_headline"),
			selector.ByClass("end_tit"),
			selector.ByID("title_area"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByID("dic_area"),
			selector.ByID("newsct_article"),
			selector.ByID("articeBody"),
		},
	},
	"daum": {
		Key: "daum",
		TitleSelectors: []selector.Spec{
			selector.ByClass("tit_view"),
			selector.ByClass("head_view"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("article_view"),
			selector.ByID("harmonyContainer"),
		},
	},
	"chosun": {
		Key: "chosun",
		TitleSelectors: []selector.Spec{
			selector.ByClass("article-header__headline"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("article-body"),
			selector.ByID("news_body_id"),
		},
	},
	"joongang": {
		Key: "joongang",
		TitleSelectors: []selector.Spec{
			selector.ByClass("headline"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByID("article_body"),
			selector.ByClass("article_body"),
		},
	},
	"donga": {
		Key: "donga",
		TitleSelectors: []selector.Spec{
			selector.ByClass("head_tit"),
			selector.ByTag("h1"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("news_view"),
			selector.ByID("article_txt"),
		},
	},
	"hani": {
		Key: "hani",
		TitleSelectors: []selector.Spec{
			selector.ByClass("ArticleDetailView_title"),
			selector.ByClass("title"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("article-text"),
			selector.ByClass("text"),
		},
	},
	"khan": {
		Key: "khan",
		TitleSelectors: []selector.Spec{
			selector.ByClass("headline"),
			selector.ByTag("h1"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("art_body"),
			selector.ByID("articleBody"),
		},
	},
	"hankyung": {
		Key: "hankyung",
		TitleSelectors: []selector.Spec{
			selector.ByClass("headline"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByID("articletxt"),
			selector.ByClass("article-body"),
		},
	},
	"mk.co": {
		Key: "mk.co",
		TitleSelectors: []selector.Spec{
			selector.ByClass("news_ttl"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("news_cnt_detail_wrap"),
			selector.ByID("article_body"),
		},
	},
	"newsis": {
		Key: "newsis",
		TitleSelectors: []selector.Spec{
			selector.ByClass("tit"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByID("textBody"),
			selector.ByClass("viewer"),
		},
	},
	"ytn": {
		Key: "ytn",
		TitleSelectors: []selector.Spec{
			selector.ByClass("news_title"),
			selector.ByTag("h2"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("paragraph"),
			selector.ByID("CmAdContent"),
		},
	},
	"sbs": {
		Key: "sbs",
		TitleSelectors: []selector.Spec{
			selector.ByClass("article_main_tit"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByClass("text_area"),
			selector.ByID("container"),
		},
	},
	"kbs": {
		Key: "kbs",
		TitleSelectors: []selector.Spec{
			selector.ByClass("headline-title"),
		},
		ContentSelectors: []selector.Spec{
			selector.ByID("cont_newstext"),
			selector.ByClass("detail-body"),
		},
	},
}
