package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/rotisserie/eris"
)

const maxBodySize = 2 * 1024 * 1024

// LocalFetcher fetches HTML via net/http and converts it to markdown. Free,
// no API calls, but cannot render client-side pages; it is the fallback when
// Firecrawl fails.
type LocalFetcher struct {
	client *http.Client
}

// NewLocalFetcher creates a LocalFetcher with sensible defaults.
func NewLocalFetcher() *LocalFetcher {
	return &LocalFetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// Name implements Fetcher.
func (l *LocalFetcher) Name() string { return "local_http" }

// Fetch retrieves the page and converts the HTML body to markdown.
func (l *LocalFetcher) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; TayloredBot/1.0)")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("local_http: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, eris.Wrap(err, "local_http: read body")
	}

	rawHTML := string(body)
	markdown, err := htmltomarkdown.ConvertString(rawHTML)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: convert to markdown")
	}

	return &Page{
		URL:      targetURL,
		Title:    extractTitle(rawHTML),
		Markdown: markdown,
		HTML:     rawHTML,
	}, nil
}

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// extractTitle pulls the <title> from HTML.
func extractTitle(body string) string {
	m := titleRe.FindStringSubmatch(body)
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
