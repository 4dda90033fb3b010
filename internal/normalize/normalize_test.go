package normalize

import (
	"strings"
	"testing"
)

func TestClean_RemovesZeroWidthAndArtifacts(t *testing.T) {
	in := "It​â€™s a test\uFEFF with Â odd bytes"
	got := Clean(in, "")
	if got != "It's a test with odd bytes" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestClean_StripsAsides(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"before [citation needed] after", "before after"},
		{"before (an aside) after", "before after"},
		{"nested (outer (inner) rest) end", "nested end"},
	}
	for _, c := range cases {
		if got := Clean(c.in, ""); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClean_StripsFillerThroughSentenceEnd(t *testing.T) {
	in := "Real intro. Lorem ipsum dolor sit amet, filler continues here. Real ending."
	got := Clean(in, "")
	if got != "Real intro. Real ending." {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestClean_DomainFillerOnlyAppliesToThatDomain(t *testing.T) {
	in := "Great article. Book a demo today and see for yourself. More content."
	withDomain := Clean(in, "https://www.infisign.ai/blog/post")
	if strings.Contains(withDomain, "demo") {
		t.Fatalf("expected domain filler removed, got %q", withDomain)
	}
	without := Clean(in, "https://example.com/post")
	if !strings.Contains(without, "Book a demo today") {
		t.Fatalf("expected other domains untouched, got %q", without)
	}
}

func TestClean_NormalizesDashesAndWhitespace(t *testing.T) {
	in := "  a–b — c\t\nd  "
	if got := Clean(in, ""); got != "a-b - c d" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"plain text already clean",
		"It​â€™s (aside) [note] lorem ipsum junk. End – here.",
		"nested (a (b) c) twice (d) done",
	}
	for _, in := range inputs {
		once := Clean(in, "https://infisign.ai/x")
		twice := Clean(once, "https://infisign.ai/x")
		if once != twice {
			t.Errorf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestClean_NoDoubleSpacesOrEdgeWhitespace(t *testing.T) {
	inputs := []string{
		"a  b   c",
		" leading and trailing ",
		"mix​ of (x) [y] â€™ everything – ok. ",
	}
	for _, in := range inputs {
		got := Clean(in, "")
		if strings.Contains(got, "  ") {
			t.Errorf("double space in %q", got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("edge whitespace in %q", got)
		}
	}
}

func TestDomainParts(t *testing.T) {
	cases := []struct {
		url, domain, sub string
	}{
		{"https://www.infisign.ai/blog/post", "infisign.ai", "No subdomain"},
		{"https://blog.example.com/p", "example.com", "blog.example.com"},
		{"https://example.com", "example.com", "No subdomain"},
		{"", "", "No subdomain"},
	}
	for _, c := range cases {
		d, s := DomainParts(c.url)
		if d != c.domain || s != c.sub {
			t.Errorf("DomainParts(%q) = (%q, %q), want (%q, %q)", c.url, d, s, c.domain, c.sub)
		}
	}
}
