package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
)

func TestVisionColors(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			return false
		}
		img := req.Messages[0].Content[0]
		return img.Type == "image" && img.ImageURL == "https://cdn.example.com/logo.png"
	})).Return(textResponse(`{"primary": "#112233", "secondary": "#AABBCC"}`), nil)

	colors, err := visionColors(context.Background(), ai, "claude-haiku-4-5-20251001", "https://cdn.example.com/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "#112233", colors.Primary)
	assert.Equal(t, "#AABBCC", colors.Secondary)
	ai.AssertExpectations(t)
}

func TestVisionColorsUncertain(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(`{"uncertain": true}`), nil)

	_, err := visionColors(context.Background(), ai, "m", "https://cdn.example.com/logo.png")
	assert.Error(t, err)
}

func TestVisionColorsInvalidHex(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse(`{"primary": "dark", "secondary": "#GGHHII"}`), nil)

	_, err := visionColors(context.Background(), ai, "m", "https://cdn.example.com/logo.png")
	assert.Error(t, err)
}

func TestVisionColorsUnparseable(t *testing.T) {
	ai := new(mockAnthropicClient)
	ai.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("the logo is mostly black and gold"), nil)

	_, err := visionColors(context.Background(), ai, "m", "https://cdn.example.com/logo.png")
	assert.Error(t, err)
}
