package model

// Provenance tags recorded as evidence sources contribute to a profile.
const (
	SourceJSONLD          = "json-ld"
	SourceOpenGraph       = "opengraph"
	SourceSocialLinks     = "social-links"
	SourceReviewLinks     = "review-links"
	SourceCTAHeuristics   = "cta-heuristics"
	SourceVision          = "vision"
	SourceSynthesis       = "synthesis"
	SourceSearchInstagram = "search-agent-instagram"
	SourceSearchFacebook  = "search-agent-facebook"
)

// SourceSet is an append-only ordered set of provenance tags accumulated
// over a single extraction request. Not safe for concurrent use.
type SourceSet struct {
	tags []string
	seen map[string]bool
}

// NewSourceSet returns an empty SourceSet.
func NewSourceSet() *SourceSet {
	return &SourceSet{seen: make(map[string]bool)}
}

// Add appends tag unless it is already present. Insertion order is preserved.
func (s *SourceSet) Add(tag string) {
	if s.seen[tag] {
		return
	}
	s.seen[tag] = true
	s.tags = append(s.tags, tag)
}

// Has reports whether tag has been recorded.
func (s *SourceSet) Has(tag string) bool {
	return s.seen[tag]
}

// Tags returns a copy of the recorded tags in insertion order.
func (s *SourceSet) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}
