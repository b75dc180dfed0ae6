package pipeline

import (
	"github.com/taylored-ai/brand-dna-service/internal/extract"
	"github.com/taylored-ai/brand-dna-service/internal/fetch"
	"github.com/taylored-ai/brand-dna-service/internal/model"
)

// buildContext fuses the extractor outputs and a truncated text excerpt into
// the context object serialized into the synthesis prompt. Pure composition;
// no validation happens here.
func buildContext(
	page *fetch.Page,
	jsonld []any,
	openGraph map[string]string,
	social map[string]string,
	reviews []string,
	logoURL string,
	hint model.Industry,
	visionColors *model.Colors,
	ctas []model.CTAButton,
	excerptLimit int,
) model.ExtractionContext {
	return model.ExtractionContext{
		SourceURL:     page.URL,
		TextExcerpt:   extract.Excerpt(page.Markdown, excerptLimit),
		JSONLD:        jsonld,
		OpenGraph:     openGraph,
		SocialLinks:   social,
		ReviewLinks:   reviews,
		LogoURL:       logoURL,
		IndustryHint:  hint,
		VisionColors:  visionColors,
		CTACandidates: ctas,
	}
}
