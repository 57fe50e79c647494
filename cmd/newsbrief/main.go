package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haniljang/newsbrief/internal/api"
	"github.com/haniljang/newsbrief/internal/app"
)

func main() {
	// .env is a convenience for local runs; a missing file is fine.
	_ = godotenv.Load()

	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		articleURL   string
		serve        bool
		listen       string
		configPath   string
		sitesFile    string
		outputPath   string
		pdfPath      string
		pdfFont      string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		fetchTimeout time.Duration
		userAgent    string
		maxSentences int
		verbose      bool
	)

	flag.StringVar(&articleURL, "url", "", "News article URL to scrape and summarize (one-shot mode)")
	flag.BoolVar(&serve, "serve", false, "Run the HTTP API instead of a one-shot scrape")
	flag.StringVar(&listen, "listen", ":8080", "Listen address for -serve")
	flag.StringVar(&configPath, "config", "newsbrief.yaml", "Path to optional YAML config file")
	flag.StringVar(&sitesFile, "sites.file", os.Getenv("SITES_FILE"), "YAML file overriding the built-in publisher tables")
	flag.StringVar(&outputPath, "output", "", "Also write the brief to this file")
	flag.StringVar(&pdfPath, "pdf", "", "Also render the brief to this PDF file")
	flag.StringVar(&pdfFont, "pdf.font", os.Getenv("PDF_FONT"), "TTF font embedded for Hangul-capable PDF output")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.DurationVar(&fetchTimeout, "timeout", 0, "Per-fetch timeout (default 10s)")
	flag.StringVar(&userAgent, "ua", "", "Override the browser-like fetch user agent")
	flag.IntVar(&maxSentences, "max.sentences", 0, "Sentences kept by the extractive summarizer (default 5)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		LLMBaseURL:   llmBaseURL,
		LLMModel:     llmModel,
		LLMAPIKey:    llmKey,
		SitesFile:    sitesFile,
		FetchTimeout: fetchTimeout,
		UserAgent:    userAgent,
		MaxSentences: maxSentences,
		OutputPath:   outputPath,
		PDFPath:      pdfPath,
		PDFFont:      pdfFont,
		Listen:       listen,
		Verbose:      verbose,
	}

	// File config fills in whatever the flags left unset. The default path is
	// optional; an explicit -config must exist.
	fc, err := app.LoadFileConfig(configPath, !flagWasSet("config"))
	if err != nil {
		log.Fatal().Err(err).Msg("config file")
	}
	fc.Apply(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg, serve, articleURL); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run(cfg app.Config, serve bool, articleURL string) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	if serve {
		return serveAPI(cfg.Listen, a)
	}
	if articleURL == "" {
		return errors.New("either -url or -serve is required")
	}
	return a.RunOnce(context.Background(), articleURL, os.Stdout)
}

func serveAPI(listen string, a *app.App) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           api.NewRouter(a),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", listen).Msg("HTTP API listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
