package pipeline

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/taylored-ai/brand-dna-service/internal/model"
	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
)

const visionPrompt = `Identify the two dominant brand colors of this logo image. Respond with exactly one JSON object: {"primary": "#RRGGBB", "secondary": "#RRGGBB"}. If you cannot determine the colors with confidence, respond with {"uncertain": true}.`

// visionColors asks a multimodal model for the logo's color pair. Any
// failure — model error, unparseable content, or an explicit uncertainty
// signal — returns an error the caller logs and ignores; this stage is never
// on the critical path.
func visionColors(ctx context.Context, ai anthropic.Client, modelID, logoURL string) (*model.Colors, error) {
	temp := 0.0
	resp, err := ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       modelID,
		MaxTokens:   256,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{
				Role: "user",
				Content: []anthropic.ContentBlock{
					{Type: "image", ImageURL: logoURL},
					{Type: "text", Text: visionPrompt},
				},
			},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "vision: create message")
	}

	var parsed struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Uncertain bool   `json:"uncertain"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &parsed); err != nil {
		return nil, eris.Wrap(err, "vision: parse response")
	}
	if parsed.Uncertain {
		return nil, eris.New("vision: model uncertain")
	}
	if !model.HexColorRe.MatchString(parsed.Primary) || !model.HexColorRe.MatchString(parsed.Secondary) {
		return nil, eris.New("vision: response is not a valid hex pair")
	}
	return &model.Colors{Primary: parsed.Primary, Secondary: parsed.Secondary}, nil
}
