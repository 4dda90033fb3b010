package app

import (
	"fmt"
	"strings"

	"github.com/seoscope/seoscope/internal/evaluate"
)

// RenderOptions controls report rendering.
type RenderOptions struct {
	// IncludeSuggestions adds the model's improvement suggestions under each
	// evaluated guideline and after the readability bands.
	IncludeSuggestions bool
}

// RenderReport formats an Analysis as a plain-text report with fixed section
// order. Sections with no data render an explicit fallback line rather than
// disappearing, so a partial run is still readable.
func RenderReport(a *Analysis, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString("# Blog SEO Analysis\n\n")
	fmt.Fprintf(&b, "URL: %s\n", a.URL)
	fmt.Fprintf(&b, "Domain: %s\n", a.Domain)
	fmt.Fprintf(&b, "Subdomain: %s\n", a.Subdomain)
	fmt.Fprintf(&b, "Title: %s\n", a.Title)
	fmt.Fprintf(&b, "Meta description: %s\n", a.MetaDescription)
	fmt.Fprintf(&b, "Language: %s\n", a.Language)

	b.WriteString("\n## Readability\n\n")
	if a.Readability == nil {
		b.WriteString("N/A (no analyzable text)\n")
	} else {
		r := a.Readability
		fmt.Fprintf(&b, "Flesch-Kincaid grade level: %.2f - %s\n", r.GradeLevel, r.GradeDescription)
		if opts.IncludeSuggestions && r.GradeSuggestion != "" {
			fmt.Fprintf(&b, "  Suggestions: %s\n", r.GradeSuggestion)
		}
		fmt.Fprintf(&b, "Flesch reading ease: %.2f - %s\n", r.ReadingEase, r.EaseDescription)
		if opts.IncludeSuggestions && r.EaseSuggestion != "" {
			fmt.Fprintf(&b, "  Suggestions: %s\n", r.EaseSuggestion)
		}
	}

	b.WriteString("\n## Extracted Keywords\n\n")
	if len(a.Keywords) == 0 {
		b.WriteString("No keywords found.\n")
	} else {
		for i, k := range a.Keywords {
			fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, k.Term, k.Count)
		}
	}

	writeEval(&b, "Keyword Optimization Analysis", a.KeywordEval, opts)
	writeEval(&b, "Content Quality Evaluation", a.ContentEval, opts)
	writeEval(&b, "Link Evaluation", a.LinkEval, opts)

	if len(a.SitemapURLs) > 0 {
		b.WriteString("\n## Sitemap\n\n")
		for _, u := range a.SitemapURLs {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}

	return b.String()
}

func writeEval(b *strings.Builder, heading string, sections []evaluate.Section, opts RenderOptions) {
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	if len(sections) == 0 {
		b.WriteString("No evaluation available.\n")
		return
	}
	for _, s := range sections {
		if s.Label != "" {
			fmt.Fprintf(b, "%s: %s\n", s.Label, s.Analysis)
		} else {
			fmt.Fprintf(b, "%s\n", s.Analysis)
		}
		if opts.IncludeSuggestions && s.Suggestion != "" && s.Suggestion != evaluate.NoSuggestions {
			fmt.Fprintf(b, "  Suggestions: %s\n", s.Suggestion)
		}
	}
}
