// Package fetch retrieves rendered page content for the extraction pipeline.
// Firecrawl is the primary fetcher; a local net/http fetcher with
// HTML-to-Markdown conversion serves as a free fallback.
package fetch

import "context"

// Page holds a fetched page in both markdown and raw HTML forms. The raw
// HTML keeps the <head> so the structured extractors can see meta tags and
// icon links.
type Page struct {
	URL      string
	Title    string
	Markdown string
	HTML     string
}

// Fetcher fetches a single URL and returns its content.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
	Name() string
}
