package pipeline

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
)

func TestSynthesizePlainJSON(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		return req.Model == "claude-sonnet-4-5-20250929" && req.System != ""
	})).Return(textResponse(`{"businessName": "Shear Genius"}`), nil)

	raw, err := synthesize(context.Background(), ai, "claude-sonnet-4-5-20250929", `{"sourceUrl":"https://x.example"}`)
	require.NoError(t, err)
	assert.Equal(t, "Shear Genius", raw["businessName"])
	ai.AssertExpectations(t)
}

func TestSynthesizeStripsCodeFences(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse("Here is the profile:\n```json\n{\"businessName\": \"Fenced\"}\n```\n"), nil)

	raw, err := synthesize(context.Background(), ai, "m", "{}")
	require.NoError(t, err)
	assert.Equal(t, "Fenced", raw["businessName"])
}

func TestSynthesizeRepairsMalformedJSON(t *testing.T) {
	// Trailing comma: invalid for encoding/json, recoverable by jsonrepair.
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse(`{"businessName": "Repaired",}`), nil)

	raw, err := synthesize(context.Background(), ai, "m", "{}")
	require.NoError(t, err)
	assert.Equal(t, "Repaired", raw["businessName"])
}

func TestSynthesizeEmptyResponse(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("   "), nil)

	_, err := synthesize(context.Background(), ai, "m", "{}")
	assert.Error(t, err)
}

func TestSynthesizeModelError(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, eris.New("overloaded"))

	_, err := synthesize(context.Background(), ai, "m", "{}")
	assert.Error(t, err)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", `Sure! {"a":1} Hope that helps.`, `{"a":1}`},
		{"no object at all", "no json here", "no json here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}
