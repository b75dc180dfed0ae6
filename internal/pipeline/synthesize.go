package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/rotisserie/eris"

	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
)

// synthesisSystemPrompt fixes the target schema and the waterfall priority
// rule for conflicting evidence. The no-null rule is repeated in the schema
// validator as a safety net; model output is never fully trusted.
const synthesisSystemPrompt = `You are a brand analyst. You receive a JSON evidence bundle extracted from a business website and must produce that business's Brand DNA profile.

Return exactly one JSON object with this shape, and nothing else:
{
  "businessName": string (required, non-empty),
  "tagline": string,
  "industry": one of "Salon" | "Restaurant" | "Service" | "General" | "E-commerce",
  "vibe": one of "Luxury" | "Industrial" | "Boho" | "Minimalist" | "Casual" | "HighEnergy",
  "colors": {"primary": "#RRGGBB", "secondary": "#RRGGBB"},
  "description": string (at most 150 characters),
  "services": [string, ...] (at least one entry),
  "contact": {"phone": string, "address": string, "email": string},
  "links": {"bookingUrl": string (required, absolute URL), "instagram": string, "facebook": string},
  "ctaButtons": [{"title": string, "url": string, "kind": "primary" | "secondary"}, ...] (at most 4),
  "voiceSetup": {"tone": string, "welcomeMessage": string}
}

When evidence sources conflict on contact details or links, resolve in strict priority order:
1. JSON-LD structured data (jsonLd)
2. Footer/contact-section links (socialLinks, ctaCandidates)
3. Inference from the free-text excerpt
Prefer the visionColors pair for colors when present; otherwise infer from the evidence.
Never emit null for any field. When a value cannot be resolved, emit an empty string "" (or an empty array for ctaButtons). Do not invent phone numbers, emails, or URLs that do not appear in the evidence.`

const synthesisMaxTokens = 2048

// synthesisTemperature keeps output variance low.
const synthesisTemperature = 0.1

// synthesize runs the single LLM completion that fuses the extraction
// context into a raw profile object. The result is untyped; all
// type-narrowing happens in the schema validator.
func synthesize(ctx context.Context, ai anthropic.Client, modelID, serializedContext string) (map[string]any, error) {
	temp := synthesisTemperature
	resp, err := ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       modelID,
		MaxTokens:   synthesisMaxTokens,
		System:      synthesisSystemPrompt,
		Temperature: &temp,
		Messages: []anthropic.Message{
			anthropic.TextMessage("user", serializedContext),
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "synthesize: create message")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, eris.New("synthesize: model returned no content")
	}

	cleaned := cleanJSON(text)
	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, eris.Wrap(err, "synthesize: parse response")
		}
		if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
			return nil, eris.Wrap(err, "synthesize: parse repaired response")
		}
	}
	return raw, nil
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
