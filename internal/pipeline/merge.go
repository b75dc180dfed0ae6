package pipeline

import (
	"github.com/taylored-ai/brand-dna-service/internal/extract"
	"github.com/taylored-ai/brand-dna-service/internal/model"
)

// evidence is one candidate value for a profile field, tagged with the
// source it came from.
type evidence struct {
	source string
	value  string
}

// firstNonEmpty returns the highest-priority candidate that carries a value.
// Candidates are ordered by priority, highest first.
func firstNonEmpty(candidates ...evidence) evidence {
	for _, c := range candidates {
		if c.value != "" {
			return c
		}
	}
	return evidence{}
}

// applyWaterfall overrides contact and link fields on a validated profile
// with structured evidence, in fixed priority order: JSON-LD beats the
// footer/social scan, which beats the synthesized value. The synthesis
// prompt states the same rule, but model output is not trusted to apply it;
// this merge makes the priority contract deterministic.
func applyWaterfall(profile *model.BrandProfile, ectx model.ExtractionContext) {
	profile.Contact.Phone = firstNonEmpty(
		evidence{model.SourceJSONLD, extract.JSONLDString(ectx.JSONLD, "telephone")},
		evidence{model.SourceSynthesis, profile.Contact.Phone},
	).value

	if email := extract.JSONLDString(ectx.JSONLD, "email"); emailRe.MatchString(email) {
		profile.Contact.Email = email
	}

	profile.Contact.Address = firstNonEmpty(
		evidence{model.SourceJSONLD, extract.JSONLDString(ectx.JSONLD, "address")},
		evidence{model.SourceSynthesis, profile.Contact.Address},
	).value

	if ig := ectx.SocialLinks["instagram"]; isAbsoluteURL(ig) {
		profile.Links.Instagram = ig
	}
	if fb := ectx.SocialLinks["facebook"]; isAbsoluteURL(fb) {
		profile.Links.Facebook = fb
	}
}
