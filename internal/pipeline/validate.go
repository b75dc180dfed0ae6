package pipeline

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"

	"github.com/taylored-ai/brand-dna-service/internal/model"
)

// profileSchema is the structural contract for the synthesis output.
// Validation collects every violation, not just the first. Color values are
// deliberately not constrained here: invalid hex is coerced to the fallback
// colors during normalization, never rejected.
const profileSchema = `{
  "type": "object",
  "required": ["businessName", "tagline", "industry", "vibe", "colors", "description", "services", "contact", "links", "ctaButtons", "voiceSetup"],
  "properties": {
    "businessName": {"type": "string", "minLength": 1},
    "tagline": {"type": "string"},
    "industry": {"enum": ["Salon", "Restaurant", "Service", "General", "E-commerce"]},
    "vibe": {"enum": ["Luxury", "Industrial", "Boho", "Minimalist", "Casual", "HighEnergy"]},
    "colors": {
      "type": "object",
      "required": ["primary", "secondary"],
      "properties": {
        "primary": {"type": "string"},
        "secondary": {"type": "string"}
      }
    },
    "description": {"type": "string", "maxLength": 150},
    "services": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "contact": {
      "type": "object",
      "required": ["phone", "address", "email"],
      "properties": {
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "email": {"type": "string"}
      }
    },
    "links": {
      "type": "object",
      "required": ["bookingUrl", "instagram", "facebook"],
      "properties": {
        "bookingUrl": {"type": "string", "minLength": 1},
        "instagram": {"type": "string"},
        "facebook": {"type": "string"}
      }
    },
    "ctaButtons": {
      "type": "array",
      "maxItems": 4,
      "items": {
        "type": "object",
        "required": ["title", "url", "kind"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "url": {"type": "string", "minLength": 1},
          "kind": {"enum": ["primary", "secondary"]}
        }
      }
    },
    "voiceSetup": {
      "type": "object",
      "required": ["tone", "welcomeMessage"],
      "properties": {
        "tone": {"type": "string", "minLength": 1},
        "welcomeMessage": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateProfile normalizes the raw synthesis output and checks it against
// the profile schema plus the semantic rules the schema cannot express
// (absolute URLs, email syntax). Either a fully-conforming BrandProfile is
// returned, or a ValidationError carrying every violated field.
func validateProfile(raw map[string]any) (*model.BrandProfile, error) {
	normalized := normalizeRaw(raw)

	doc, err := json.Marshal(normalized)
	if err != nil {
		return nil, eris.Wrap(err, "validate: marshal normalized output")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(profileSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, eris.Wrap(err, "validate: run schema")
	}

	var violations []FieldViolation
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			if prop, ok := e.Details()["property"].(string); ok {
				field = prop
			}
		}
		violations = append(violations, FieldViolation{Field: field, Reason: e.Description()})
	}

	// Normalization fixes the shape, so the decode succeeds even when the
	// schema pass failed; semantic checks always run so the caller sees the
	// complete violation set, structural and semantic together.
	var profile model.BrandProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		if len(violations) > 0 {
			return nil, &ValidationError{Violations: violations}
		}
		return nil, eris.Wrap(err, "validate: decode profile")
	}
	violations = append(violations, semanticViolations(&profile)...)

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return &profile, nil
}

// semanticViolations checks rules JSON Schema cannot express.
func semanticViolations(p *model.BrandProfile) []FieldViolation {
	var violations []FieldViolation

	if !isAbsoluteURL(p.Links.BookingURL) {
		violations = append(violations, FieldViolation{
			Field:  "links.bookingUrl",
			Reason: "must be an absolute http(s) URL",
		})
	}
	if p.Links.Instagram != "" && !isAbsoluteURL(p.Links.Instagram) {
		violations = append(violations, FieldViolation{
			Field:  "links.instagram",
			Reason: "must be an absolute http(s) URL or empty",
		})
	}
	if p.Links.Facebook != "" && !isAbsoluteURL(p.Links.Facebook) {
		violations = append(violations, FieldViolation{
			Field:  "links.facebook",
			Reason: "must be an absolute http(s) URL or empty",
		})
	}
	if p.Contact.Email != "" && !emailRe.MatchString(p.Contact.Email) {
		violations = append(violations, FieldViolation{
			Field:  "contact.email",
			Reason: "must be a valid email address or empty",
		})
	}
	for i, cta := range p.CTAButtons {
		if !isAbsoluteURL(cta.URL) {
			violations = append(violations, FieldViolation{
				Field:  "ctaButtons." + strconv.Itoa(i) + ".url",
				Reason: "must be an absolute http(s) URL",
			})
		}
	}
	return violations
}

// normalizeRaw applies the documented coercions before strict validation:
// nulls become empty strings, missing sub-objects are materialized, invalid
// or empty colors become the fallback pair, CTA kinds default to secondary
// with at most one primary, and empty service entries are dropped.
func normalizeRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for _, key := range []string{"businessName", "tagline", "industry", "vibe", "description"} {
		out[key] = cleanString(out[key])
	}

	colors := subObject(out, "colors")
	colors["primary"] = coerceHex(cleanString(colors["primary"]), model.FallbackPrimaryColor)
	colors["secondary"] = coerceHex(cleanString(colors["secondary"]), model.FallbackSecondaryColor)

	contact := subObject(out, "contact")
	for _, key := range []string{"phone", "address", "email"} {
		contact[key] = cleanString(contact[key])
	}

	links := subObject(out, "links")
	for _, key := range []string{"bookingUrl", "instagram", "facebook"} {
		links[key] = cleanString(links[key])
	}

	voice := subObject(out, "voiceSetup")
	for _, key := range []string{"tone", "welcomeMessage"} {
		voice[key] = cleanString(voice[key])
	}

	out["services"] = normalizeServices(out["services"])
	out["ctaButtons"] = normalizeCTAs(out["ctaButtons"])

	return out
}

// subObject fetches out[key] as a map, materializing an empty one when the
// value is missing or the wrong shape.
func subObject(out map[string]any, key string) map[string]any {
	if m, ok := out[key].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	out[key] = m
	return m
}

// cleanString returns v trimmed when it is a string, and "" otherwise.
// This is the empty-string-never-null contract's enforcement point.
func cleanString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// coerceHex keeps a valid 6-digit hex value and replaces anything else with
// the fallback. Invalid hex is replaced, never rejected.
func coerceHex(s, fallback string) string {
	if model.HexColorRe.MatchString(s) {
		return s
	}
	return fallback
}

func normalizeServices(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		if s := cleanString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeCTAs(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(items))
	sawPrimary := false
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		kind := cleanString(entry["kind"])
		switch {
		case kind == string(model.CTAPrimary) && !sawPrimary:
			sawPrimary = true
		default:
			// Only the first discovered primary keeps its rank.
			kind = string(model.CTASecondary)
		}
		out = append(out, map[string]any{
			"title": cleanString(entry["title"]),
			"url":   cleanString(entry["url"]),
			"kind":  kind,
		})
	}
	if len(out) > model.MaxCTAButtons {
		out = out[:model.MaxCTAButtons]
	}
	return out
}

// isAbsoluteURL reports whether s parses as an absolute http(s) URL.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
