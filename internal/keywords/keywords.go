package keywords

import (
	"sort"
	"strings"

	prose "github.com/jdkato/prose/v2"
	"github.com/rs/zerolog/log"
)

// Keyword is a noun phrase with its occurrence count in the source text.
type Keyword struct {
	Term  string
	Count int
}

// DefaultTopN caps the ranked keyword list when callers pass no limit.
const DefaultTopN = 20

// Extract tokenizes text into noun phrases, filters stopwords and returns the
// topN most frequent phrases. Ordering is descending by frequency with ties
// broken by first appearance in the text. Extraction failures are logged and
// yield an empty list; they never propagate to the caller.
func Extract(text string, topN int) []Keyword {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		log.Warn().Err(err).Msg("keyword extraction failed")
		return nil
	}

	phrases := nounPhrases(doc.Tokens())

	counts := make(map[string]int, len(phrases))
	firstSeen := make(map[string]int, len(phrases))
	for i, p := range phrases {
		if _, ok := counts[p]; !ok {
			firstSeen[p] = i
		}
		counts[p]++
	}

	ranked := make([]Keyword, 0, len(counts))
	for term, n := range counts {
		ranked = append(ranked, Keyword{Term: term, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Term] < firstSeen[ranked[j].Term]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// nounPhrases chunks the token stream into contiguous adjective/noun spans
// that end in a noun, lowercased, with stopword phrases dropped.
func nounPhrases(tokens []prose.Token) []string {
	var phrases []string
	var chunk []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(chunk) > 0 {
			// Trim leading adjectives that dangle without a following noun
			// inside the span; the chunk always ends with a noun here.
			phrase := strings.ToLower(strings.Join(chunk, " "))
			if !stopwords[phrase] {
				phrases = append(phrases, phrase)
			}
		}
		chunk = chunk[:0]
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			chunk = append(chunk, tok.Text)
			hasNoun = true
		case strings.HasPrefix(tok.Tag, "JJ"):
			if hasNoun {
				// A fresh adjective starts a new candidate phrase.
				flush()
			}
			chunk = append(chunk, tok.Text)
		default:
			flush()
		}
	}
	flush()
	return phrases
}
