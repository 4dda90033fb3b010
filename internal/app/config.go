package app

import "time"

// Config holds runtime configuration for one analysis run.
type Config struct {
	// URL is the page under analysis.
	URL string
	// OutputPath receives the rendered report. "-" writes to stdout.
	OutputPath string
	// OutputPDFPath, when set, additionally writes the report as a PDF.
	OutputPDFPath string
	// SitemapURL, when set, is fetched and its URL list appended to the report.
	SitemapURL string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Analysis
	TopKeywords        int
	IncludeSuggestions bool
	FetchTimeout       time.Duration
	EvalTimeout        time.Duration
	UserAgent          string

	// Behavior
	LogFile string
	Verbose bool
}
