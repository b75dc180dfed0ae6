package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Firecrawl  FirecrawlConfig  `yaml:"firecrawl" mapstructure:"firecrawl"`
	Perplexity PerplexityConfig `yaml:"perplexity" mapstructure:"perplexity"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Pipeline   PipelineConfig   `yaml:"pipeline" mapstructure:"pipeline"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// FirecrawlConfig holds Firecrawl API settings.
type FirecrawlConfig struct {
	Key       string  `yaml:"key" mapstructure:"key"`
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	WaitForMs int     `yaml:"wait_for_ms" mapstructure:"wait_for_ms"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// PerplexityConfig holds Perplexity API settings.
type PerplexityConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key            string `yaml:"key" mapstructure:"key"`
	SynthesisModel string `yaml:"synthesis_model" mapstructure:"synthesis_model"`
	VisionModel    string `yaml:"vision_model" mapstructure:"vision_model"`
}

// PipelineConfig configures extraction behavior and per-stage timeouts.
type PipelineConfig struct {
	MinContentLength     int `yaml:"min_content_length" mapstructure:"min_content_length"`
	TextExcerptLimit     int `yaml:"text_excerpt_limit" mapstructure:"text_excerpt_limit"`
	SearchMaxResults     int `yaml:"search_max_results" mapstructure:"search_max_results"`
	FetchTimeoutSecs     int `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
	VisionTimeoutSecs    int `yaml:"vision_timeout_secs" mapstructure:"vision_timeout_secs"`
	SynthesisTimeoutSecs int `yaml:"synthesis_timeout_secs" mapstructure:"synthesis_timeout_secs"`
	SearchTimeoutSecs    int `yaml:"search_timeout_secs" mapstructure:"search_timeout_secs"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TAYLORED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	// API keys default to empty so the env lookup sees the keys at
	// unmarshal time.
	v.SetDefault("firecrawl.key", "")
	v.SetDefault("perplexity.key", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v2")
	v.SetDefault("firecrawl.wait_for_ms", 1500)
	v.SetDefault("firecrawl.rate_limit", 5)
	v.SetDefault("perplexity.base_url", "https://api.perplexity.ai")
	v.SetDefault("anthropic.synthesis_model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.vision_model", "claude-haiku-4-5-20251001")
	v.SetDefault("pipeline.min_content_length", 100)
	v.SetDefault("pipeline.text_excerpt_limit", 4000)
	v.SetDefault("pipeline.search_max_results", 5)
	v.SetDefault("pipeline.fetch_timeout_secs", 60)
	v.SetDefault("pipeline.vision_timeout_secs", 20)
	v.SetDefault("pipeline.synthesis_timeout_secs", 60)
	v.SetDefault("pipeline.search_timeout_secs", 15)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
