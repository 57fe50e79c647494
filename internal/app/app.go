// Package app wires the scrape and summarize pipeline together from
// configuration and drives one-shot runs.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/haniljang/newsbrief/internal/fetch"
	"github.com/haniljang/newsbrief/internal/scrape"
	"github.com/haniljang/newsbrief/internal/sites"
	"github.com/haniljang/newsbrief/internal/summarize"
)

// App holds the long-lived pipeline pieces. All of them are read-only after
// New, so one App serves concurrent requests without locking.
type App struct {
	cfg        Config
	Resolver   *sites.Resolver
	Scraper    *scrape.Scraper
	Summarizer *summarize.Summarizer
}

// New builds the pipeline from cfg. The AI summarization path is enabled only
// when a credential or a compatible base URL is configured; without it the
// extractive fallback carries all summaries.
func New(cfg Config) (*App, error) {
	resolver := sites.Default()
	if cfg.SitesFile != "" {
		r, err := sites.FromFile(cfg.SitesFile)
		if err != nil {
			return nil, fmt.Errorf("load site tables: %w", err)
		}
		resolver = r
		log.Info().Str("file", cfg.SitesFile).Int("sites", len(r.Entries())).
			Msg("site tables loaded from file")
	}

	scraper := &scrape.Scraper{
		Fetcher: &fetch.Client{
			Timeout:   cfg.FetchTimeout,
			UserAgent: cfg.UserAgent,
		},
		Sites:            resolver,
		RequireSupported: true,
	}

	summarizer := &summarize.Summarizer{MaxSentences: cfg.MaxSentences}
	if cfg.LLMAPIKey != "" || cfg.LLMBaseURL != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		summarizer.Client = openai.NewClientWithConfig(transportCfg)
		summarizer.Model = cfg.LLMModel
		if summarizer.Model == "" {
			summarizer.Model = openai.GPT4oMini
		}
		log.Info().Str("model", summarizer.Model).Msg("AI summarization enabled")
	} else {
		log.Info().Msg("no LLM configured; summaries are extractive")
	}

	return &App{cfg: cfg, Resolver: resolver, Scraper: scraper, Summarizer: summarizer}, nil
}

// HasAIClient reports whether the abstractive path is configured.
func (a *App) HasAIClient() bool {
	return a.Summarizer.Client != nil
}

// RunOnce scrapes url, summarizes it, and writes the formatted brief to w.
// Configured file and PDF outputs are written as well.
func (a *App) RunOnce(ctx context.Context, url string, w io.Writer) error {
	article, err := a.Scraper.Scrape(ctx, url)
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	log.Info().Str("title", article.Title).Msg("article extracted")

	res, err := a.Summarizer.Summarize(ctx, article.Title, article.Content)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	brief := article.Title + "\n" + article.URL + "\n\n" + res.Format() + "\n"
	if _, err := io.WriteString(w, brief); err != nil {
		return fmt.Errorf("write brief: %w", err)
	}
	if a.cfg.OutputPath != "" {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(brief), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}
	if a.cfg.PDFPath != "" {
		if err := writeBriefPDF(article.Title, res.Format(), a.cfg.PDFFont, a.cfg.PDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.PDFPath).Msg("PDF brief written")
	}
	return nil
}
