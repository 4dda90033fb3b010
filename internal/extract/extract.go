package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seoscope/seoscope/internal/normalize"
)

// Result holds the extracted and normalized parts of a page.
type Result struct {
	// Content is text from content-bearing elements (headings, paragraphs,
	// list items) with noise regions removed.
	Content string
	// FullText is all visible page text after noise removal. The link
	// evaluation wants the whole page, not just the article body.
	FullText string

	Title           string
	MetaDescription string
}

// ErrContentEmpty reports that extraction produced no usable body text.
// Scoring empty content would yield misleading metrics, so this fails loudly.
var ErrContentEmpty = errors.New("page content is empty")

const (
	noTitle = "No title found"
	noMeta  = "No meta description found"
)

// noiseSelector matches containers whose text must never reach extraction.
const noiseSelector = "script, style, noscript, iframe, nav, aside, footer"

// contentSelector lists the content-bearing elements collected in document order.
const contentSelector = "h1, h2, h3, h4, h5, h6, p, li"

// FromHTML parses a page and extracts normalized body text, title and meta
// description. It returns ErrContentEmpty when no content-bearing text
// survives normalization.
func FromHTML(input []byte, rawURL string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	removeNoiseByAttr(doc)

	title := normalize.Clean(doc.Find("title").First().Text(), rawURL)
	if title == "" {
		title = noTitle
	}
	meta := normalize.Clean(metaDescription(doc), rawURL)
	if meta == "" {
		meta = noMeta
	}

	var parts []string
	doc.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	content := normalize.Clean(strings.Join(parts, " "), rawURL)
	if content == "" {
		return Result{}, ErrContentEmpty
	}

	full := normalize.Clean(doc.Find("body").Text(), rawURL)

	return Result{
		Content:         content,
		FullText:        full,
		Title:           title,
		MetaDescription: meta,
	}, nil
}

// noiseAttrMarkers flags side rails and footers that hide behind generic tags.
var noiseAttrMarkers = []string{"sidebar", "side-rail", "siderail", "footer"}

func removeNoiseByAttr(doc *goquery.Document) {
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		class, _ := s.Attr("class")
		val := strings.ToLower(id + " " + class)
		for _, m := range noiseAttrMarkers {
			if strings.Contains(val, m) {
				s.Remove()
				return
			}
		}
	})
}

// metaDescription prefers the standard description tag over Open Graph.
func metaDescription(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		return v
	}
	return ""
}
