package fetch

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/taylored-ai/brand-dna-service/pkg/firecrawl"
)

// FirecrawlFetcher fetches pages through the Firecrawl scrape API, which
// renders client-side pages before returning content.
type FirecrawlFetcher struct {
	client    firecrawl.Client
	waitForMs int
}

// NewFirecrawlFetcher creates a FirecrawlFetcher. waitForMs is the hydration
// delay passed to the scrape call.
func NewFirecrawlFetcher(client firecrawl.Client, waitForMs int) *FirecrawlFetcher {
	return &FirecrawlFetcher{client: client, waitForMs: waitForMs}
}

// Name implements Fetcher.
func (f *FirecrawlFetcher) Name() string { return "firecrawl" }

// Fetch requests both markdown and raw HTML, including the <head>.
func (f *FirecrawlFetcher) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	resp, err := f.client.Scrape(ctx, firecrawl.ScrapeRequest{
		URL:             targetURL,
		Formats:         []string{"markdown", "rawHtml"},
		WaitFor:         f.waitForMs,
		OnlyMainContent: false,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, eris.New("firecrawl: scrape not successful")
	}
	page := &Page{
		URL:      resp.Data.URL,
		Title:    resp.Data.Title,
		Markdown: resp.Data.Markdown,
		HTML:     resp.Data.RawHTML,
	}
	if page.URL == "" {
		page.URL = targetURL
	}
	return page, nil
}
