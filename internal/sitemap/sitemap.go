package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/seoscope/seoscope/internal/fetch"
)

// Fetch retrieves a sitemap and returns the URLs it lists. Sitemap index
// files work too: their <loc> entries point at further sitemaps and are
// returned as-is rather than followed.
func Fetch(ctx context.Context, client *fetch.Client, rawURL string) ([]string, error) {
	body, err := client.GetXML(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch sitemap: %w", err)
	}
	urls, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}
	return urls, nil
}

// Parse extracts every <loc> value from sitemap XML.
func Parse(data []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var urls []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return urls, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "loc" {
			continue
		}
		var loc string
		if err := dec.DecodeElement(&loc, &start); err != nil {
			return nil, err
		}
		if loc != "" {
			urls = append(urls, loc)
		}
	}
}
