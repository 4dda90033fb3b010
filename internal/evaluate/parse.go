package evaluate

import (
	"strings"

	"github.com/seoscope/seoscope/internal/normalize"
)

// NoSuggestions is substituted when a line carries the Suggestions delimiter
// but no suggestion text, so rendering never has to special-case blanks.
const NoSuggestions = "No Suggestions"

const suggestionDelim = "Suggestions:"

// ParseSections splits a model reply into ordered sections, one per line.
// Lines carrying a "Suggestions:" delimiter are split into analysis and
// suggestion; in the link flow a plain "Label: text" form is also split.
// Lines matching neither form pass through verbatim as un-split sections —
// the model is not contract-bound to the requested format, and a format
// deviation must not turn into a parse failure. Zero-width characters are
// stripped from every line.
func ParseSections(raw string, kind Kind) []Section {
	var sections []Section
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(normalize.StripInvisible(line))
		if line == "" {
			continue
		}
		sections = append(sections, parseLine(line, kind))
	}
	return sections
}

func parseLine(line string, kind Kind) Section {
	if i := strings.Index(line, suggestionDelim); i >= 0 {
		head := strings.TrimSpace(line[:i])
		sug := strings.TrimSpace(line[i+len(suggestionDelim):])
		if sug == "" {
			sug = NoSuggestions
		}
		label, analysis := splitLabel(head)
		return Section{Label: label, Analysis: analysis, Suggestion: sug}
	}
	if kind == KindLink {
		if label, analysis := splitLabel(line); label != "" {
			return Section{Label: label, Analysis: analysis}
		}
	}
	// Pass-through: keep the line verbatim rather than failing on format drift.
	return Section{Analysis: line}
}

// splitLabel splits "Label: analysis" on the first colon. Markdown bold and
// list decorations around the label are trimmed. An empty label means the
// line did not match the form.
func splitLabel(s string) (label, analysis string) {
	i := strings.Index(s, ":")
	if i <= 0 {
		return "", s
	}
	label = strings.Trim(strings.TrimSpace(s[:i]), "*#-• ")
	analysis = strings.TrimSpace(strings.Trim(strings.TrimSpace(s[i+1:]), "*"))
	if label == "" {
		return "", s
	}
	return label, analysis
}
