package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestFromHTML_CollectsContentInDocumentOrder(t *testing.T) {
	html := `<!doctype html>
	<html>
	  <head>
	    <title>Test Page</title>
	    <meta name="description" content="A page about testing.">
	  </head>
	  <body>
	    <h1>Heading One</h1>
	    <p>First paragraph.</p>
	    <h2>Heading Two</h2>
	    <ul><li>Item one</li><li>Item two</li></ul>
	  </body>
	</html>`

	res, err := FromHTML([]byte(html), "https://example.com/post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "Test Page" {
		t.Fatalf("expected title 'Test Page', got %q", res.Title)
	}
	if res.MetaDescription != "A page about testing." {
		t.Fatalf("unexpected meta description %q", res.MetaDescription)
	}
	want := "Heading One First paragraph. Heading Two Item one Item two"
	if res.Content != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestFromHTML_RemovesNoiseRegions(t *testing.T) {
	html := `<html><body>
	  <nav><li>Home</li></nav>
	  <aside><p>Related posts</p></aside>
	  <div class="sidebar-widget"><p>Subscribe now</p></div>
	  <article><p>Real content here.</p></article>
	  <footer><p>Contact us</p></footer>
	</body></html>`

	res, err := FromHTML([]byte(html), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, noise := range []string{"Contact us", "Home", "Related posts", "Subscribe now"} {
		if strings.Contains(res.Content, noise) {
			t.Errorf("content should not contain %q: %q", noise, res.Content)
		}
		if strings.Contains(res.FullText, noise) {
			t.Errorf("full text should not contain %q: %q", noise, res.FullText)
		}
	}
	if !strings.Contains(res.Content, "Real content here.") {
		t.Fatalf("content missing article text: %q", res.Content)
	}
}

func TestFromHTML_MetaDescriptionPrefersStandardTag(t *testing.T) {
	html := `<html><head>
	  <meta property="og:description" content="og description">
	  <meta name="description" content="standard description">
	</head><body><p>Body.</p></body></html>`

	res, err := FromHTML([]byte(html), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MetaDescription != "standard description" {
		t.Fatalf("expected standard tag to win, got %q", res.MetaDescription)
	}
}

func TestFromHTML_OpenGraphFallback(t *testing.T) {
	html := `<html><head>
	  <meta property="og:description" content="og description">
	</head><body><p>Body.</p></body></html>`

	res, err := FromHTML([]byte(html), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MetaDescription != "og description" {
		t.Fatalf("expected og fallback, got %q", res.MetaDescription)
	}
}

func TestFromHTML_SentinelsForMissingTitleAndMeta(t *testing.T) {
	html := `<html><body><p>Only a paragraph.</p></body></html>`

	res, err := FromHTML([]byte(html), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "No title found" {
		t.Fatalf("expected title sentinel, got %q", res.Title)
	}
	if res.MetaDescription != "No meta description found" {
		t.Fatalf("expected meta sentinel, got %q", res.MetaDescription)
	}
}

func TestFromHTML_EmptyContentFailsLoudly(t *testing.T) {
	html := `<html><head><title>Empty</title></head>
	<body><div>bare text outside content elements</div></body></html>`

	_, err := FromHTML([]byte(html), "")
	if !errors.Is(err, ErrContentEmpty) {
		t.Fatalf("expected ErrContentEmpty, got %v", err)
	}
}

func TestFromHTML_SimpleParagraph(t *testing.T) {
	html := `<html><body><p>Hello world. This is simple text.</p></body></html>`

	res, err := FromHTML([]byte(html), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "Hello world. This is simple text." {
		t.Fatalf("content = %q", res.Content)
	}
}
