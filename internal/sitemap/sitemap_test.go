package sitemap

import "testing"

func TestParse_URLSet(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc><lastmod>2025-01-01</lastmod></url>
  <url><loc>https://example.com/blog/post</loc></url>
</urlset>`)
	urls, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://example.com/" || urls[1] != "https://example.com/blog/post" {
		t.Fatalf("unexpected urls %v", urls)
	}
}

func TestParse_SitemapIndex(t *testing.T) {
	data := []byte(`<sitemapindex>
  <sitemap><loc>https://example.com/sitemap-posts.xml</loc></sitemap>
</sitemapindex>`)
	urls, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://example.com/sitemap-posts.xml" {
		t.Fatalf("unexpected urls %v", urls)
	}
}

func TestParse_MalformedXML(t *testing.T) {
	if _, err := Parse([]byte("<urlset><url><loc>broken")); err == nil {
		t.Fatal("expected error for malformed xml")
	}
}

func TestParse_Empty(t *testing.T) {
	urls, err := Parse([]byte(`<urlset></urlset>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 0 {
		t.Fatalf("expected no urls, got %v", urls)
	}
}
