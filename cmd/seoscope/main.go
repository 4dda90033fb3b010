package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seoscope/seoscope/internal/app"
	"github.com/seoscope/seoscope/internal/extract"
	"github.com/seoscope/seoscope/internal/fetch"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		pageURL     string
		outputPath  string
		outputPDF   string
		sitemapURL  string
		configPath  string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		topKeywords int
		suggestions bool
		fetchWait   time.Duration
		evalWait    time.Duration
		userAgent   string
		logFile     string
		verbose     bool
	)

	flag.StringVar(&pageURL, "url", "", "URL of the blog page to analyze")
	flag.StringVar(&outputPath, "output", "-", "Path to write the text report ('-' for stdout)")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write the report as PDF")
	flag.StringVar(&sitemapURL, "sitemap", "", "Optional sitemap URL to fetch and list in the report")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file; flags take precedence")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.IntVar(&topKeywords, "keywords.top", 0, "Number of top keywords to extract (default 20)")
	flag.BoolVar(&suggestions, "suggestions", false, "Include improvement suggestions in the report")
	flag.DurationVar(&fetchWait, "fetch.timeout", 0, "Page fetch timeout (default 10s)")
	flag.DurationVar(&evalWait, "eval.timeout", 60*time.Second, "Per-evaluation model call timeout")
	flag.StringVar(&userAgent, "ua", "seoscope/1.0", "User-Agent for page requests")
	flag.StringVar(&logFile, "log.file", "", "Optional file to also receive error-level logs")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Positional URL is accepted as a convenience.
	if pageURL == "" && flag.NArg() > 0 {
		pageURL = flag.Arg(0)
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		URL:                pageURL,
		OutputPath:         outputPath,
		OutputPDFPath:      outputPDF,
		SitemapURL:         sitemapURL,
		LLMBaseURL:         llmBaseURL,
		LLMModel:           llmModel,
		LLMAPIKey:          llmKey,
		TopKeywords:        topKeywords,
		IncludeSuggestions: suggestions,
		FetchTimeout:       fetchWait,
		EvalTimeout:        evalWait,
		UserAgent:          userAgent,
		LogFile:            logFile,
		Verbose:            verbose,
	}
	// The default output path is a flag default, not an explicit choice, so
	// clear it before the overlay to let a config file supply its own.
	if outputPath == "-" {
		cfg.OutputPath = ""
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.LogFile).Msg("open log file")
			os.Exit(1)
		}
		defer f.Close()
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = log.Output(zerolog.MultiLevelWriter(console, errorOnlyWriter{f}))
	}

	if err := app.ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the page itself is unusable (fetch refused
		// or nothing to analyze), 1 for everything else.
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) || errors.Is(err, extract.ErrContentEmpty) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()
	return app.New(cfg, nil).Run(ctx)
}

// errorOnlyWriter forwards only error-level (and above) events, so the log
// file captures failures without the full debug stream.
type errorOnlyWriter struct {
	w io.Writer
}

func (e errorOnlyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (e errorOnlyWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.ErrorLevel {
		return len(p), nil
	}
	return e.w.Write(p)
}
