package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration accepts "10s"-style strings, which yaml.v3 does not decode into
// time.Duration on its own. Bare integers are taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env vars.
type FileConfig struct {
	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Sites struct {
		File string `yaml:"file"`
	} `yaml:"sites"`

	Fetch struct {
		Timeout   Duration `yaml:"timeout"`
		UserAgent string   `yaml:"userAgent"`
	} `yaml:"fetch"`

	Summary struct {
		MaxSentences int `yaml:"maxSentences"`
	} `yaml:"summary"`

	Output struct {
		Path    string `yaml:"path"`
		PDF     string `yaml:"pdf"`
		PDFFont string `yaml:"pdfFont"`
	} `yaml:"output"`

	Listen  string `yaml:"listen"`
	Verbose bool   `yaml:"verbose"`
}

// LoadFileConfig reads a YAML config file. A missing file is not an error
// when optional is true, so the default path can be probed harmlessly.
func LoadFileConfig(path string, optional bool) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply merges file values under cfg: only fields the flags left at their
// zero value are taken from the file.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc == nil {
		return
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.SitesFile == "" {
		cfg.SitesFile = fc.Sites.File
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = time.Duration(fc.Fetch.Timeout)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.MaxSentences == 0 {
		cfg.MaxSentences = fc.Summary.MaxSentences
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output.Path
	}
	if cfg.PDFPath == "" {
		cfg.PDFPath = fc.Output.PDF
	}
	if cfg.PDFFont == "" {
		cfg.PDFFont = fc.Output.PDFFont
	}
	if cfg.Listen == "" {
		cfg.Listen = fc.Listen
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
