package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/seoscope/seoscope/internal/evaluate"
	"github.com/seoscope/seoscope/internal/extract"
	"github.com/seoscope/seoscope/internal/fetch"
	"github.com/seoscope/seoscope/internal/keywords"
	"github.com/seoscope/seoscope/internal/langdetect"
	"github.com/seoscope/seoscope/internal/llm"
	"github.com/seoscope/seoscope/internal/normalize"
	"github.com/seoscope/seoscope/internal/readability"
	"github.com/seoscope/seoscope/internal/sitemap"
)

// PageFetcher abstracts page retrieval for the analyzer. fetch.Client
// satisfies it; tests substitute a fake.
type PageFetcher interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// Analysis is the complete result for one page. Evaluation slices are nil
// when the corresponding model call failed; the renderer shows a fallback
// for those sections.
type Analysis struct {
	URL             string
	Domain          string
	Subdomain       string
	Title           string
	MetaDescription string
	Language        string

	Readability *readability.Score
	Keywords    []keywords.Keyword

	KeywordEval []evaluate.Section
	ContentEval []evaluate.Section
	LinkEval    []evaluate.Section

	SitemapURLs []string
}

// Analyzer wires the analysis stages together. All collaborators are
// injected so tests can run the full pipeline against fakes.
type Analyzer struct {
	Fetcher     PageFetcher
	Evaluator   *evaluate.Evaluator
	Detector    *langdetect.Detector
	TopKeywords int
}

// Analyze runs the full pipeline for one URL. Fetch and extraction failures
// abort the run; everything downstream degrades per stage instead.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*Analysis, error) {
	if a.Fetcher == nil {
		return nil, fmt.Errorf("analyzer: no fetcher configured")
	}

	start := time.Now()
	body, err := a.Fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	log.Debug().Str("url", rawURL).Int("bytes", len(body)).Dur("took", time.Since(start)).Msg("page fetched")

	res, err := extract.FromHTML(body, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}

	domain, subdomain := normalize.DomainParts(rawURL)
	out := &Analysis{
		URL:             rawURL,
		Domain:          domain,
		Subdomain:       subdomain,
		Title:           res.Title,
		MetaDescription: res.MetaDescription,
		Language:        a.Detector.Detect(res.Content),
	}

	out.Readability = readability.Analyze(res.Content)

	topN := a.TopKeywords
	if topN <= 0 {
		topN = keywords.DefaultTopN
	}
	out.Keywords = keywords.Extract(res.Content, topN)

	if a.Evaluator != nil {
		in := evaluate.Input{
			Content:         res.Content,
			FullText:        res.FullText,
			Title:           res.Title,
			MetaDescription: res.MetaDescription,
			URL:             rawURL,
			Keywords:        keywordTerms(out.Keywords),
		}
		// The three evaluations are independent model calls; run them
		// concurrently so total latency is the slowest call, not the sum.
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			out.KeywordEval = a.Evaluator.Evaluate(ctx, evaluate.KindKeyword, in)
		}()
		go func() {
			defer wg.Done()
			out.ContentEval = a.Evaluator.Evaluate(ctx, evaluate.KindContent, in)
		}()
		go func() {
			defer wg.Done()
			out.LinkEval = a.Evaluator.Evaluate(ctx, evaluate.KindLink, in)
		}()
		wg.Wait()
	}

	log.Info().Str("url", rawURL).Dur("took", time.Since(start)).Msg("analysis complete")
	return out, nil
}

func keywordTerms(kws []keywords.Keyword) []string {
	terms := make([]string, 0, len(kws))
	for _, k := range kws {
		terms = append(terms, k.Term)
	}
	return terms
}

// App binds configuration to an Analyzer and handles output.
type App struct {
	cfg      Config
	analyzer *Analyzer
	fetcher  *fetch.Client
}

// New builds the application from config. The chat client is constructed
// here; pass a non-nil client to override it (tests do).
func New(cfg Config, client llm.Client) *App {
	if client == nil {
		oc := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			oc.BaseURL = cfg.LLMBaseURL
		}
		client = &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(oc)}
	}
	fetcher := &fetch.Client{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	}
	return &App{
		cfg:     cfg,
		fetcher: fetcher,
		analyzer: &Analyzer{
			Fetcher: fetcher,
			Evaluator: &evaluate.Evaluator{
				Client:  client,
				Model:   cfg.LLMModel,
				Timeout: cfg.EvalTimeout,
			},
			Detector:    langdetect.New(),
			TopKeywords: cfg.TopKeywords,
		},
	}
}

// Run executes one analysis and writes the report to the configured outputs.
func (a *App) Run(ctx context.Context) error {
	// Best-effort preflight: a dead model endpoint surfaces here instead of
	// as three identical evaluation warnings later.
	if ml, ok := a.analyzer.Evaluator.Client.(llm.ModelLister); ok {
		if _, err := ml.ListModels(ctx); err != nil {
			log.Warn().Err(err).Msg("model endpoint preflight failed; evaluations may be unavailable")
		}
	}

	analysis, err := a.analyzer.Analyze(ctx, a.cfg.URL)
	if err != nil {
		return err
	}

	if a.cfg.SitemapURL != "" {
		urls, err := sitemap.Fetch(ctx, a.fetcher, a.cfg.SitemapURL)
		if err != nil {
			log.Warn().Err(err).Str("sitemap", a.cfg.SitemapURL).Msg("sitemap fetch failed")
		} else {
			analysis.SitemapURLs = urls
		}
	}

	report := RenderReport(analysis, RenderOptions{IncludeSuggestions: a.cfg.IncludeSuggestions})

	if err := a.writeOut(report); err != nil {
		return err
	}
	if a.cfg.OutputPDFPath != "" {
		if err := WritePDF(a.cfg.OutputPDFPath, report); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("wrote pdf report")
	}
	return nil
}

func (a *App) writeOut(report string) error {
	path := strings.TrimSpace(a.cfg.OutputPath)
	if path == "" || path == "-" {
		_, err := os.Stdout.WriteString(report)
		return err
	}
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", path).Msg("wrote report")
	return nil
}
