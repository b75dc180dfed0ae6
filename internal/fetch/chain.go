package fetch

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Chain tries fetchers in priority order, returning the first success.
type Chain struct {
	fetchers []Fetcher
}

// NewChain creates a Chain. Fetchers are tried in order.
func NewChain(fetchers ...Fetcher) *Chain {
	return &Chain{fetchers: fetchers}
}

// Name implements Fetcher.
func (c *Chain) Name() string { return "chain" }

// Fetch tries each fetcher in order for a single URL.
// Returns the first successful result, or the last error if all fail.
func (c *Chain) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	var lastErr error
	for _, f := range c.fetchers {
		page, err := f.Fetch(ctx, targetURL)
		if err == nil && page != nil {
			return page, nil
		}
		if err != nil {
			zap.L().Debug("fetch: fetcher failed, trying next",
				zap.String("fetcher", f.Name()),
				zap.String("url", targetURL),
				zap.Error(err),
			)
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, eris.Wrap(lastErr, "fetch: all fetchers failed")
	}
	return nil, eris.Errorf("fetch: no fetcher configured for url: %s", targetURL)
}
