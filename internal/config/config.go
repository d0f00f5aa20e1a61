// Package config loads application configuration from an optional
// config.yaml plus SKILLPATH_-prefixed environment variables. Env always
// wins; a missing config file is fine since every field has a default.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/store"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	// Path is the SQLite database file. Empty means the default data dir
	// (SKILLPATH_DB / XDG_DATA_HOME / ~/.local/share).
	Path string `mapstructure:"path"`
}

type LLMConfig struct {
	Provider       string `mapstructure:"provider"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`

	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	AnthropicModel  string `mapstructure:"anthropic_model"`
}

type YouTubeConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type LogConfig struct {
	// Mode is "debug" or "production".
	Mode string `mapstructure:"mode"`
	// File is the rotated log file path. Empty disables file logging.
	File string `mapstructure:"file"`
}

// Load reads config.yaml from path (when present) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SKILLPATH")
	v.AutomaticEnv()

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout_seconds", 60)
	v.SetDefault("log.mode", "production")

	v.BindEnv("database.path", "SKILLPATH_DB")

	v.BindEnv("llm.provider", "SKILLPATH_LLM_PROVIDER")
	v.BindEnv("llm.gemini_api_key", "GEMINI_API_KEY")
	v.BindEnv("llm.gemini_model", "SKILLPATH_GEMINI_MODEL")
	v.BindEnv("llm.openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.openai_model", "SKILLPATH_OPENAI_MODEL")
	v.BindEnv("llm.openai_base_url", "SKILLPATH_OPENAI_BASE_URL")
	v.BindEnv("llm.anthropic_api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("llm.anthropic_model", "SKILLPATH_ANTHROPIC_MODEL")

	v.BindEnv("youtube.api_key", "YOUTUBE_API_KEY")

	v.BindEnv("log.mode", "SKILLPATH_LOG_MODE")
	v.BindEnv("log.file", "SKILLPATH_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LLMConfig maps the application config onto the generation client's
// config. An unset provider falls back to key discovery, so `export
// GEMINI_API_KEY=...` alone is a working setup.
func (c *Config) LLMConfig() llm.Config {
	lc := llm.DefaultConfig()

	if c.LLM.TimeoutSeconds > 0 {
		lc.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second
	}
	lc.Gemini.APIKey = c.LLM.GeminiAPIKey
	lc.OpenAI.APIKey = c.LLM.OpenAIAPIKey
	lc.OpenAI.BaseURL = c.LLM.OpenAIBaseURL
	lc.Anthropic.APIKey = c.LLM.AnthropicAPIKey

	if c.LLM.GeminiModel != "" {
		lc.Gemini.Model = c.LLM.GeminiModel
	}
	if c.LLM.OpenAIModel != "" {
		lc.OpenAI.Model = c.LLM.OpenAIModel
	}
	if c.LLM.AnthropicModel != "" {
		lc.Anthropic.Model = c.LLM.AnthropicModel
	}

	if c.LLM.Provider != "" {
		lc.Provider = c.LLM.Provider
		return lc
	}

	if discovered, ok := llm.DiscoverConfig(); ok {
		discovered.Timeout = lc.Timeout
		return discovered
	}
	return lc
}

// DBPath resolves the database file location.
func (c *Config) DBPath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, store.EnsureDir(c.Database.Path)
	}
	return store.DefaultDBPath()
}
