package readability

import (
	"strings"
	"testing"
)

func TestAnalyze_EmptyInputReturnsNil(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		if got := Analyze(in); got != nil {
			t.Errorf("Analyze(%q) = %+v, want nil", in, got)
		}
	}
}

func TestAnalyze_SimpleTextIsEasy(t *testing.T) {
	s := Analyze("Hello world. This is simple text.")
	if s == nil {
		t.Fatal("expected a score")
	}
	if s.GradeLevel >= 6 {
		t.Fatalf("expected low grade level, got %.2f", s.GradeLevel)
	}
	if !strings.Contains(s.GradeDescription, "Easy to read") {
		t.Fatalf("unexpected grade description %q", s.GradeDescription)
	}
	if s.GradeSuggestion != "" {
		t.Fatalf("easy band should carry no suggestion, got %q", s.GradeSuggestion)
	}
}

func TestAnalyze_ComplexTextScoresHarder(t *testing.T) {
	easy := Analyze("The cat sat. The dog ran. We had fun.")
	hard := Analyze("Notwithstanding considerable organizational heterogeneity, " +
		"the interdepartmental standardization initiative demonstrated extraordinarily " +
		"comprehensive multidimensional institutional transformation characteristics.")
	if easy == nil || hard == nil {
		t.Fatal("expected scores")
	}
	if hard.GradeLevel <= easy.GradeLevel {
		t.Fatalf("hard grade %.2f should exceed easy grade %.2f", hard.GradeLevel, easy.GradeLevel)
	}
	if hard.ReadingEase >= easy.ReadingEase {
		t.Fatalf("hard ease %.2f should be below easy ease %.2f", hard.ReadingEase, easy.ReadingEase)
	}
}

func TestGradeBand_Totality(t *testing.T) {
	for g := -10.0; g <= 30.0; g += 0.125 {
		desc, _ := GradeBand(g)
		if desc == "" {
			t.Fatalf("no grade band for %.3f", g)
		}
	}
}

func TestEaseBand_Totality(t *testing.T) {
	for e := -50.0; e <= 130.0; e += 0.125 {
		desc, _ := EaseBand(e)
		if desc == "" {
			t.Fatalf("no ease band for %.3f", e)
		}
	}
}

func TestGradeBand_BoundaryOwnership(t *testing.T) {
	cases := []struct {
		grade float64
		want  string
	}{
		{5.999, "Easy to read, suitable for younger audiences."},
		{6, "Suitable for a general audience."},
		{9, "High school comprehension."},
		{12, "College-level comprehension."},
		{15, "Complex content, typically for academic or expert-level readers."},
	}
	for _, c := range cases {
		if desc, _ := GradeBand(c.grade); desc != c.want {
			t.Errorf("GradeBand(%.3f) = %q, want %q", c.grade, desc, c.want)
		}
	}
}

func TestEaseBand_HarderBandsCarrySuggestions(t *testing.T) {
	if _, sug := EaseBand(85); sug != "" {
		t.Errorf("very easy band should carry no suggestion")
	}
	if _, sug := EaseBand(40); sug == "" {
		t.Errorf("difficult band should carry a suggestion")
	}
	if _, sug := EaseBand(10); sug == "" {
		t.Errorf("very difficult band should carry a suggestion")
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"simple", 1},
		{"readability", 5},
		{"xyz", 1},
	}
	for _, c := range cases {
		if got := countSyllables(c.word); got != c.want {
			t.Errorf("countSyllables(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}
