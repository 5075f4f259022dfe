package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	WebPort  int    `mapstructure:"WEB_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	LLMHost               string        `mapstructure:"LLM_HOST"`
	LLMAPIKey             string        `mapstructure:"LLM_API_KEY"`
	LLMModel              string        `mapstructure:"LLM_MODEL"`
	LLMRequestTimeout     time.Duration `mapstructure:"LLM_REQUEST_TIMEOUT"`
	MaxRetries            int           `mapstructure:"MAX_RETRIES"`
	RetryDelaySeconds     time.Duration `mapstructure:"RETRY_DELAY_SECONDS"`
	LLMBackoffMaxSeconds  time.Duration `mapstructure:"LLM_BACKOFF_MAX_SECONDS"`
	LLMBackoffJitterRatio float64       `mapstructure:"LLM_BACKOFF_JITTER_RATIO"`

	HackathonName     string `mapstructure:"HACKATHON_NAME"`
	HackathonTheme    string `mapstructure:"HACKATHON_THEME"`
	HackathonDuration string `mapstructure:"HACKATHON_DURATION"`

	RoutingLLMTags     []string `mapstructure:"ROUTING_LLM_TAGS"`
	RoutingSnippetTags []string `mapstructure:"ROUTING_SNIPPET_TAGS"`

	RateLimitMessagesPerMin int `mapstructure:"RATE_LIMIT_MESSAGES_PER_MIN"`
	RateLimitBurstSize      int `mapstructure:"RATE_LIMIT_BURST_SIZE"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values. Each setting resolves independently:
	// environment > config file > default.
	viper.SetDefault("WEB_PORT", 3000)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LLM_HOST", "http://localhost:8080")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_REQUEST_TIMEOUT", 60)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("RETRY_DELAY_SECONDS", 2)
	viper.SetDefault("LLM_BACKOFF_MAX_SECONDS", 30)
	viper.SetDefault("LLM_BACKOFF_JITTER_RATIO", 0.1)
	viper.SetDefault("HACKATHON_NAME", "")
	viper.SetDefault("HACKATHON_THEME", "")
	viper.SetDefault("HACKATHON_DURATION", "")
	viper.SetDefault("ROUTING_LLM_TAGS", []string{"ai:", "llm:", "ask:"})
	viper.SetDefault("ROUTING_SNIPPET_TAGS", []string{"snippet:", "code:", "snip:"})
	viper.SetDefault("RATE_LIMIT_MESSAGES_PER_MIN", 30)
	viper.SetDefault("RATE_LIMIT_BURST_SIZE", 5)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	config.RoutingLLMTags = normalizeTagList(config.RoutingLLMTags)
	config.RoutingSnippetTags = normalizeTagList(config.RoutingSnippetTags)

	// Convert seconds to proper time.Duration
	config.LLMRequestTimeout = config.LLMRequestTimeout * time.Second
	config.RetryDelaySeconds = config.RetryDelaySeconds * time.Second
	config.LLMBackoffMaxSeconds = config.LLMBackoffMaxSeconds * time.Second

	return &config
}

// normalizeTagList trims entries, drops empties, and splits comma-joined
// values so env overrides like ROUTING_LLM_TAGS="ai:,ask:" work.
func normalizeTagList(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		for _, part := range strings.Split(tag, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				cleaned = append(cleaned, part)
			}
		}
	}
	return cleaned
}
