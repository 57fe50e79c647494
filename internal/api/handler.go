// Package api exposes the extraction and summarization pipeline over HTTP.
// Every response is a JSON envelope with a success flag; failures carry a
// user-facing Korean message, never a bare stack of wrapped errors.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/haniljang/newsbrief/internal/fetch"
	"github.com/haniljang/newsbrief/internal/scrape"
	"github.com/haniljang/newsbrief/internal/sites"
	"github.com/haniljang/newsbrief/internal/summarize"
)

// Scraper runs the extraction pipeline for one URL.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (scrape.Article, error)
}

// Summarizer produces a summary for extracted content.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (summarize.Result, error)
}

// NewsHandler serves the news endpoints. All fields are read-only.
type NewsHandler struct {
	scraper    Scraper
	summarizer Summarizer
	resolver   *sites.Resolver
	hasAIKey   bool
}

// NewNewsHandler wires the pipeline into HTTP handlers.
func NewNewsHandler(s Scraper, sum Summarizer, r *sites.Resolver, hasAIKey bool) *NewsHandler {
	return &NewsHandler{scraper: s, summarizer: sum, resolver: r, hasAIKey: hasAIKey}
}

// Extract handles POST /api/extract.
func (h *NewsHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusOK, ExtractResponse{Error: "URL이 필요합니다."})
		return
	}

	article, err := h.scraper.Scrape(c.Request.Context(), req.URL)
	if err != nil {
		log.Debug().Err(err).Str("url", req.URL).Msg("extract failed")
		c.JSON(http.StatusOK, ExtractResponse{Error: extractionMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ExtractResponse{Success: true, Title: article.Title, Content: article.Content})
}

// Summarize handles POST /api/summarize. A request with a URL runs the full
// pipeline; otherwise title and content must both be present.
func (h *NewsHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, SummarizeResponse{Error: "제목과 본문이 필요합니다."})
		return
	}

	title, content := req.Title, req.Content
	if strings.TrimSpace(req.URL) != "" {
		article, err := h.scraper.Scrape(c.Request.Context(), req.URL)
		if err != nil {
			log.Debug().Err(err).Str("url", req.URL).Msg("summarize scrape failed")
			c.JSON(http.StatusOK, SummarizeResponse{Error: extractionMessage(err)})
			return
		}
		title, content = article.Title, article.Content
	} else if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		c.JSON(http.StatusOK, SummarizeResponse{Error: "제목과 본문이 필요합니다."})
		return
	}

	res, err := h.summarizer.Summarize(c.Request.Context(), title, content)
	if err != nil {
		if errors.Is(err, summarize.ErrContentTooShort) {
			c.JSON(http.StatusOK, SummarizeResponse{Error: "본문이 너무 짧아 요약할 수 없습니다."})
			return
		}
		log.Error().Err(err).Msg("summarize failed")
		c.JSON(http.StatusOK, SummarizeResponse{Error: "요약 생성 중 오류가 발생했습니다."})
		return
	}
	c.JSON(http.StatusOK, SummarizeResponse{Success: true, Summary: res.Format(), AI: res.AI})
}

// SupportedSites handles GET /api/news/supported-sites.
func (h *NewsHandler) SupportedSites(c *gin.Context) {
	entries := h.resolver.Entries()
	out := make([]SiteEntry, len(entries))
	for i, e := range entries {
		out[i] = SiteEntry{Domain: e.Domain, Name: e.Name, URL: "https://" + e.Domain}
	}
	c.JSON(http.StatusOK, SupportedSitesResponse{Success: true, Count: len(out), Sites: out})
}

// Health handles GET /api/health.
func (h *NewsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", HasAPIKey: h.hasAIKey})
}

// extractionMessage maps pipeline errors to user-facing text.
func extractionMessage(err error) string {
	var ue *sites.UnsupportedError
	switch {
	case errors.Is(err, sites.ErrInvalidURL):
		return "올바른 URL 형식이 아닙니다."
	case errors.As(err, &ue):
		return "지원하지 않는 사이트입니다. 지원 사이트: " + strings.Join(sites.SupportedDomains(), ", ")
	case errors.Is(err, scrape.ErrNoTitle):
		return "뉴스 제목을 찾을 수 없습니다. 다른 URL을 시도해보세요."
	case errors.Is(err, scrape.ErrNoContent):
		return "뉴스 본문을 찾을 수 없습니다. 다른 URL을 시도해보세요."
	default:
		return fetch.UserMessage(err)
	}
}
