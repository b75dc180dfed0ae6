package main

import (
	"go.uber.org/zap"

	"github.com/taylored-ai/brand-dna-service/internal/config"
	"github.com/taylored-ai/brand-dna-service/internal/fetch"
	"github.com/taylored-ai/brand-dna-service/internal/pipeline"
	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
	"github.com/taylored-ai/brand-dna-service/pkg/firecrawl"
	"github.com/taylored-ai/brand-dna-service/pkg/perplexity"
)

// buildPipeline constructs the pipeline from whatever credentials are
// configured. Missing required credentials leave the corresponding
// collaborator nil; the pipeline turns that into a ConfigurationError per
// request rather than refusing to start.
func buildPipeline(cfg *config.Config) *pipeline.Pipeline {
	var fetcher fetch.Fetcher
	if cfg.Firecrawl.Key != "" {
		fc := firecrawl.NewClient(cfg.Firecrawl.Key,
			firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL),
			firecrawl.WithRateLimit(cfg.Firecrawl.RateLimit),
		)
		fetcher = fetch.NewChain(
			fetch.NewFirecrawlFetcher(fc, cfg.Firecrawl.WaitForMs),
			fetch.NewLocalFetcher(),
		)
	} else {
		zap.L().Warn("no firecrawl key configured, using direct HTTP fetch only")
		fetcher = fetch.NewLocalFetcher()
	}

	var ai anthropic.Client
	if cfg.Anthropic.Key != "" {
		ai = anthropic.NewClient(cfg.Anthropic.Key)
	} else {
		zap.L().Warn("no anthropic key configured, extraction requests will fail")
	}

	var search perplexity.Client
	if cfg.Perplexity.Key != "" {
		search = perplexity.NewClient(cfg.Perplexity.Key, perplexity.WithBaseURL(cfg.Perplexity.BaseURL))
	} else {
		zap.L().Info("no perplexity key configured, social link backfill disabled")
	}

	return pipeline.New(cfg, fetcher, ai, search)
}
