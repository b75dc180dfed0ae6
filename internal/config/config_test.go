package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://api.firecrawl.dev/v2", cfg.Firecrawl.BaseURL)
	assert.Equal(t, "https://api.perplexity.ai", cfg.Perplexity.BaseURL)
	assert.NotEmpty(t, cfg.Anthropic.SynthesisModel)
	assert.NotEmpty(t, cfg.Anthropic.VisionModel)
	assert.Equal(t, 100, cfg.Pipeline.MinContentLength)
	assert.Equal(t, 4000, cfg.Pipeline.TextExcerptLimit)
	assert.Equal(t, 5, cfg.Pipeline.SearchMaxResults)
	assert.Positive(t, cfg.Pipeline.FetchTimeoutSecs)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TAYLORED_SERVER_PORT", "9999")
	t.Setenv("TAYLORED_ANTHROPIC_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nonsense", Format: "json"}))
}
