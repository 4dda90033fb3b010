package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Clean strips encoding artifacts, invisible characters, editorial asides and
// placeholder filler from text, then collapses whitespace. The rawURL, when
// non-empty, selects additional per-domain filler patterns by registered
// domain. Clean is total and idempotent; the worst case is an empty string.
func Clean(text string, rawURL string) string {
	if text == "" {
		return ""
	}
	s := StripInvisible(text)
	s = fixArtifacts(s)
	s = stripAsides(s)
	s = stripFiller(s, registeredDomain(rawURL))
	s = normalizeDashes(s)
	return collapseWhitespace(s)
}

// formatChars matches Unicode format characters (category Cf): zero-width
// joiners, directional marks, the byte-order mark and friends.
var formatChars = runes.Remove(runes.In(unicode.Cf))

// StripInvisible removes zero-width and related invisible characters. The
// evaluator also applies it to generated lines, since models happily echo
// these characters back from their input.
func StripInvisible(s string) string {
	out, _, err := transform.String(formatChars, s)
	if err != nil {
		return s
	}
	return out
}

// fixArtifacts repairs the common UTF-8-decoded-as-Latin-1 sequences seen in
// scraped blog text and restores the intended punctuation.
func fixArtifacts(s string) string {
	r := strings.NewReplacer(
		"â€™", "'",
		"â€œ", "\"",
		"â€", "\"",
		"â€“", "-",
		"â€”", "-",
		"Â ", " ",
		"Â", "",
	)
	return r.Replace(s)
}

var (
	bracketAsideRe = regexp.MustCompile(`\[[^\[\]]*\]`)
	parenAsideRe   = regexp.MustCompile(`\([^()]*\)`)
)

// stripAsides removes bracketed editorial asides and parenthetical asides.
// This is deliberately lossy: legitimate parenthetical content goes with the
// noise. Innermost groups are removed repeatedly so nested asides disappear
// in one call, keeping Clean idempotent.
func stripAsides(s string) string {
	for {
		next := bracketAsideRe.ReplaceAllString(s, " ")
		next = parenAsideRe.ReplaceAllString(next, " ")
		if next == s {
			return s
		}
		s = next
	}
}

// genericFiller lists placeholder boilerplate removed regardless of domain.
// Each match is stripped together with the remainder of its sentence.
var genericFiller = []string{
	"lorem ipsum",
	"your text here",
	"placeholder text",
	"sample text goes here",
}

// domainFiller holds extra filler phrases keyed by registered domain. The
// table is intentionally small; it mirrors the handful of blogs the tool is
// pointed at in practice.
var domainFiller = map[string][]string{
	"infisign.ai": {
		"book a demo today",
		"start your free trial",
	},
	"medium.com": {
		"sign up to continue reading",
		"become a member",
	},
}

var fillerRes = map[string]*regexp.Regexp{}

func init() {
	phrases := append([]string{}, genericFiller...)
	for _, extra := range domainFiller {
		phrases = append(phrases, extra...)
	}
	for _, p := range phrases {
		fillerRes[p] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p) + `[^.!?]*[.!?]?`)
	}
}

func stripFiller(s string, domain string) string {
	for _, p := range genericFiller {
		s = fillerRes[p].ReplaceAllString(s, " ")
	}
	if domain != "" {
		for _, p := range domainFiller[domain] {
			s = fillerRes[p].ReplaceAllString(s, " ")
		}
	}
	return s
}

func normalizeDashes(s string) string {
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	return s
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

// DomainParts splits a URL's host into registered domain and subdomain. The
// subdomain is the full host when a subdomain is present, otherwise the
// sentinel "No subdomain".
func DomainParts(rawURL string) (domain, subdomain string) {
	host := hostOf(rawURL)
	if host == "" {
		return "", "No subdomain"
	}
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host, "No subdomain"
	}
	domain = strings.Join(parts[len(parts)-2:], ".")
	if len(parts) > 2 {
		return domain, host
	}
	return domain, "No subdomain"
}

func registeredDomain(rawURL string) string {
	d, _ := DomainParts(rawURL)
	return d
}

func hostOf(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	return host
}
