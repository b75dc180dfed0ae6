package model

import "encoding/json"

// ExtractionContext is the fused evidence bundle handed to the synthesis
// stage. It is built fresh per request and discarded once synthesis returns.
type ExtractionContext struct {
	SourceURL     string            `json:"sourceUrl"`
	TextExcerpt   string            `json:"textExcerpt"`
	JSONLD        []any             `json:"jsonLd,omitempty"`
	OpenGraph     map[string]string `json:"openGraph,omitempty"`
	SocialLinks   map[string]string `json:"socialLinks,omitempty"`
	ReviewLinks   []string          `json:"reviewLinks,omitempty"`
	LogoURL       string            `json:"logoUrl,omitempty"`
	IndustryHint  Industry          `json:"industryHint,omitempty"`
	VisionColors  *Colors           `json:"visionColors,omitempty"`
	CTACandidates []CTAButton       `json:"ctaCandidates,omitempty"`
}

// Serialize renders the context as indented JSON for the model prompt.
func (c ExtractionContext) Serialize() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
