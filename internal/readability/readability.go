package readability

import (
	"regexp"
	"strings"
)

// Score holds the Flesch-Kincaid grade level and Flesch reading ease for a
// text, together with their qualitative band descriptions. Suggestions are
// empty for bands that need no improvement.
type Score struct {
	GradeLevel  float64
	ReadingEase float64

	GradeDescription string
	GradeSuggestion  string
	EaseDescription  string
	EaseSuggestion   string
}

// Analyze computes readability scores for text. It returns nil for empty or
// whitespace-only input: absence of content is expected for some pages and
// must not halt the pipeline.
func Analyze(text string) *Score {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}
	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	s := &Score{
		GradeLevel:  0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59,
		ReadingEase: 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord,
	}
	s.GradeDescription, s.GradeSuggestion = GradeBand(s.GradeLevel)
	s.EaseDescription, s.EaseSuggestion = EaseBand(s.ReadingEase)
	return s
}

// GradeBand maps a grade level to its band description and suggestion.
// Bands are half-open [low, high) so every real value lands in exactly one.
func GradeBand(grade float64) (description, suggestion string) {
	switch {
	case grade < 6:
		return "Easy to read, suitable for younger audiences.", ""
	case grade < 9:
		return "Suitable for a general audience.", ""
	case grade < 12:
		return "High school comprehension.",
			"Shorten sentences and prefer common words to reach a broader audience."
	case grade < 15:
		return "College-level comprehension.",
			"Break up long sentences and replace jargon with plain language."
	default:
		return "Complex content, typically for academic or expert-level readers.",
			"Rewrite dense passages in shorter sentences; most blog readers expect grade 8 or below."
	}
}

// EaseBand maps a reading ease score to its band description and suggestion.
func EaseBand(ease float64) (description, suggestion string) {
	switch {
	case ease >= 80:
		return "Very easy to read.", ""
	case ease >= 70:
		return "Easy to read.", ""
	case ease >= 50:
		return "Fairly easy to read.", ""
	case ease >= 30:
		return "Difficult to read.",
			"Use shorter sentences and simpler vocabulary to raise the ease score."
	default:
		return "Very difficult to read, often technical or academic.",
			"Simplify sentence structure substantially; aim for an ease score above 50."
	}
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

func countSentences(text string) int {
	n := len(sentenceEndRe.FindAllString(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

var nonWordRe = regexp.MustCompile(`[^a-zA-Z0-9']+`)

func splitWords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(text, " ")
	return strings.Fields(cleaned)
}

// countSyllables approximates syllables as runs of vowels, with a silent-e
// adjustment and a floor of one. The Flesch formulas tolerate this level of
// approximation.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
