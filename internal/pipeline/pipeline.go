// Package pipeline implements the Brand DNA extraction pipeline: fetch,
// structured extraction, optional vision color lookup, LLM synthesis, schema
// validation, waterfall merge, and conditional social-link backfill. Every
// invocation is a stateless, idempotent best-effort transformation of one
// URL into one validated profile or a typed failure.
package pipeline

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taylored-ai/brand-dna-service/internal/config"
	"github.com/taylored-ai/brand-dna-service/internal/extract"
	"github.com/taylored-ai/brand-dna-service/internal/fetch"
	"github.com/taylored-ai/brand-dna-service/internal/model"
	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
	"github.com/taylored-ai/brand-dna-service/pkg/perplexity"
)

// Stage timeout fallbacks when config leaves a value unset.
const (
	defaultFetchTimeout     = 60 * time.Second
	defaultVisionTimeout    = 20 * time.Second
	defaultSynthesisTimeout = 60 * time.Second
	defaultSearchTimeout    = 15 * time.Second
)

// Pipeline runs the extraction stages against explicit collaborator
// dependencies. No implicit singletons; tests substitute fakes.
type Pipeline struct {
	cfg     *config.Config
	fetcher fetch.Fetcher
	ai      anthropic.Client
	search  perplexity.Client
}

// New creates a Pipeline. The search client may be nil, which disables the
// backfill stage; fetcher and ai are required and their absence surfaces as
// a ConfigurationError at run time.
func New(cfg *config.Config, fetcher fetch.Fetcher, ai anthropic.Client, search perplexity.Client) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		ai:      ai,
		search:  search,
	}
}

// Run executes the full pipeline for a single URL.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*model.Extraction, error) {
	extractionID := uuid.NewString()
	log := zap.L().With(zap.String("extraction_id", extractionID), zap.String("url", rawURL))
	log.Info("pipeline: starting extraction")

	if missing := p.missingDeps(); len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	// Fetch. Fatal on failure; no partial profile is ever returned.
	fetchCtx, cancel := stageContext(ctx, p.cfg.Pipeline.FetchTimeoutSecs, defaultFetchTimeout)
	page, err := p.fetcher.Fetch(fetchCtx, rawURL)
	cancel()
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	text := strings.TrimSpace(page.Markdown)
	minLen := p.cfg.Pipeline.MinContentLength
	if minLen <= 0 {
		minLen = 100
	}
	// Threshold is in characters, not bytes.
	textLen := utf8.RuneCountInString(text)
	if textLen < minLen {
		return nil, &FetchError{Insufficient: true, TextLength: textLen}
	}

	sources := model.NewSourceSet()
	doc := extract.Parse(page.HTML, page.URL)

	// JSON-LD first: the industry hint it yields picks the CTA keyword table.
	jsonld := extract.JSONLD(doc)
	hint := extract.IndustryHint(extract.JSONLDTypes(jsonld))

	// The remaining extractors are pure functions over the same immutable
	// document, so they can run concurrently.
	var (
		openGraph map[string]string
		social    map[string]string
		reviews   []string
		logoURL   string
		ctas      []model.CTAButton
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { openGraph = extract.OpenGraph(doc); return nil })
	g.Go(func() error { social, reviews = extract.SocialLinks(doc); return nil })
	g.Go(func() error { logoURL = extract.LogoURL(doc); return nil })
	g.Go(func() error { ctas = extract.CTAButtons(doc, hint); return nil })
	_ = g.Wait()

	if len(jsonld) > 0 {
		sources.Add(model.SourceJSONLD)
	}
	if len(openGraph) > 0 {
		sources.Add(model.SourceOpenGraph)
	}
	if len(social) > 0 {
		sources.Add(model.SourceSocialLinks)
	}
	if len(reviews) > 0 {
		sources.Add(model.SourceReviewLinks)
	}
	if len(ctas) > 0 {
		sources.Add(model.SourceCTAHeuristics)
	}

	// Vision colors: optional enrichment, skipped entirely without a logo,
	// and never fatal.
	var vision *model.Colors
	if logoURL != "" {
		visionCtx, cancel := stageContext(ctx, p.cfg.Pipeline.VisionTimeoutSecs, defaultVisionTimeout)
		vision, err = visionColors(visionCtx, p.ai, p.cfg.Anthropic.VisionModel, logoURL)
		cancel()
		if err != nil {
			log.Warn("pipeline: vision stage failed, continuing without color signal", zap.Error(err))
			vision = nil
		} else {
			sources.Add(model.SourceVision)
		}
	}

	excerptLimit := p.cfg.Pipeline.TextExcerptLimit
	if excerptLimit <= 0 {
		excerptLimit = 4000
	}
	ectx := buildContext(page, jsonld, openGraph, social, reviews, logoURL, hint, vision, ctas, excerptLimit)

	synthCtx, cancel := stageContext(ctx, p.cfg.Pipeline.SynthesisTimeoutSecs, defaultSynthesisTimeout)
	raw, err := synthesize(synthCtx, p.ai, p.cfg.Anthropic.SynthesisModel, ectx.Serialize())
	cancel()
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}
	sources.Add(model.SourceSynthesis)

	profile, err := validateProfile(raw)
	if err != nil {
		return nil, err
	}

	applyWaterfall(profile, ectx)

	searchCtx, cancel := stageContext(ctx, p.cfg.Pipeline.SearchTimeoutSecs, defaultSearchTimeout)
	backfillSocialLinks(searchCtx, p.search, p.cfg.Pipeline.SearchMaxResults, profile, sources)
	cancel()

	log.Info("pipeline: extraction complete",
		zap.String("business", profile.BusinessName),
		zap.Strings("data_sources", sources.Tags()),
	)

	return &model.Extraction{
		Success:      true,
		Profile:      *profile,
		SourceURL:    rawURL,
		ExtractionID: extractionID,
		ExtractedAt:  time.Now().UTC(),
		DataSources:  sources.Tags(),
	}, nil
}

// missingDeps names the required collaborators that are absent.
func (p *Pipeline) missingDeps() []string {
	var missing []string
	if p.fetcher == nil {
		missing = append(missing, "page fetcher (firecrawl key)")
	}
	if p.ai == nil {
		missing = append(missing, "anthropic key")
	}
	return missing
}

// stageContext derives a per-stage timeout context, falling back to def when
// the configured seconds are unset.
func stageContext(ctx context.Context, secs int, def time.Duration) (context.Context, context.CancelFunc) {
	d := def
	if secs > 0 {
		d = time.Duration(secs) * time.Second
	}
	return context.WithTimeout(ctx, d)
}
