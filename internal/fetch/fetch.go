// Package fetch retrieves raw article HTML. It sends browser-like headers
// because most Korean news sites reject obvious bot user agents, bounds every
// request with a timeout, and decodes legacy charsets (EUC-KR is still common)
// to UTF-8 before handing the page to the extractor.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultTimeout bounds a fetch when the client does not set one.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent mimics a desktop Chrome browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps response reads; article pages past this size are cut off
// rather than ballooning memory.
const maxBodyBytes = 8 << 20

// ErrTimeout marks a fetch that exceeded its deadline.
var ErrTimeout = errors.New("fetch timed out")

// ErrNotHTML marks a response whose Content-Type is not an HTML page. The
// extractor only understands markup, so JSON endpoints and binaries are
// rejected at the door.
var ErrNotHTML = errors.New("response is not an HTML page")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// Blocked reports whether the site refused the request outright.
func (e *StatusError) Blocked() bool { return e.Code == http.StatusForbidden }

// NotFound reports a missing page.
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// Client issues bounded, browser-like GET requests.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means
	// default (5).
	RedirectMaxHops int
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// Get fetches rawURL and returns the page body as UTF-8 text. Failures map to
// ErrTimeout or *StatusError so callers can tailor their messages.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return "", fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	if ct := resp.Header.Get("Content-Type"); !isAllowedHTMLContentType(ct) {
		return "", fmt.Errorf("%w: %q", ErrNotHTML, ct)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("read body: %w", err)
	}
	return decode(raw, resp.Header.Get("Content-Type")), nil
}

// decode converts raw bytes to UTF-8 using the charset declared in the
// Content-Type header or sniffed from the document head. Undecodable input is
// returned as-is; extraction then works with whatever survives.
func decode(raw []byte, contentType string) string {
	peek := raw
	if len(peek) > 1024 {
		peek = peek[:1024]
	}
	enc, name, _ := charset.DetermineEncoding(peek, contentType)
	if name == "utf-8" {
		return string(raw)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isAllowedHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	// allow text/html variants and application/xhtml+xml
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// UserMessage renders a fetch failure as the user-facing string the UI shows.
// Each kind gets its own wording so timeouts read as retryable.
func UserMessage(err error) string {
	var se *StatusError
	switch {
	case errors.Is(err, ErrTimeout):
		return "요청 시간이 초과되었습니다. 다시 시도해보세요."
	case errors.As(err, &se) && se.Blocked():
		return "해당 사이트에서 접근을 차단했습니다."
	case errors.As(err, &se) && se.NotFound():
		return "페이지를 찾을 수 없습니다."
	default:
		return "뉴스를 가져오는 중 오류가 발생했습니다."
	}
}
