package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flags.
type FileConfig struct {
	URL       string `yaml:"url" json:"url"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`
	Sitemap   string `yaml:"sitemap" json:"sitemap"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Analysis struct {
		TopKeywords        int    `yaml:"topKeywords" json:"topKeywords"`
		IncludeSuggestions *bool  `yaml:"includeSuggestions" json:"includeSuggestions"`
		// Durations are strings like "30s"; parsed with time.ParseDuration.
		FetchTimeout string `yaml:"fetchTimeout" json:"fetchTimeout"`
		EvalTimeout  string `yaml:"evalTimeout" json:"evalTimeout"`
		UserAgent    string `yaml:"userAgent" json:"userAgent"`
	} `yaml:"analysis" json:"analysis"`

	Log struct {
		File string `yaml:"file" json:"file"`
	} `yaml:"log" json:"log"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that
// flags left unset, so explicit flags keep priority over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.URL == "" && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if cfg.SitemapURL == "" && fc.Sitemap != "" {
		cfg.SitemapURL = fc.Sitemap
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.TopKeywords == 0 && fc.Analysis.TopKeywords > 0 {
		cfg.TopKeywords = fc.Analysis.TopKeywords
	}
	if fc.Analysis.IncludeSuggestions != nil {
		cfg.IncludeSuggestions = *fc.Analysis.IncludeSuggestions
	}
	if cfg.FetchTimeout == 0 {
		if d, err := time.ParseDuration(fc.Analysis.FetchTimeout); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if cfg.EvalTimeout == 0 {
		if d, err := time.ParseDuration(fc.Analysis.EvalTimeout); err == nil && d > 0 {
			cfg.EvalTimeout = d
		}
	}
	if cfg.UserAgent == "" && fc.Analysis.UserAgent != "" {
		cfg.UserAgent = fc.Analysis.UserAgent
	}
	if cfg.LogFile == "" && fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal validation of required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	if cfg.TopKeywords < 0 {
		return errors.New("config: negative keyword limit is not allowed")
	}
	return nil
}
