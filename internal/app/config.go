package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Site tables
	SitesFile string

	// Fetch behavior
	FetchTimeout time.Duration
	UserAgent    string

	// Summary behavior
	MaxSentences int

	// Outputs for one-shot runs
	OutputPath string
	PDFPath    string
	// PDFFont is a TTF embedded for Hangul-capable PDF output; empty falls
	// back to the built-in Helvetica, which covers Latin text only.
	PDFFont string

	// Serve mode
	Listen string

	Verbose bool
}
