package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the application configuration.
type Config struct {
	Env       string `envconfig:"ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	ModelConfig
}

// ModelConfig selects and configures the text generation backend.
type ModelConfig struct {
	Provider    string        `envconfig:"MODEL_PROVIDER" default:"openai"`
	Timeout     time.Duration `envconfig:"MODEL_TIMEOUT" default:"60s"`
	Temperature float32       `envconfig:"MODEL_TEMPERATURE" default:"0.7"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: could not load %s: %v", envFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: error checking %s: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.ModelConfig.Provider = strings.ToLower(strings.TrimSpace(c.ModelConfig.Provider))
	switch c.ModelConfig.Provider {
	case ProviderOpenAI:
		if c.ModelConfig.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when MODEL_PROVIDER=%s", ProviderOpenAI)
		}
	case ProviderGemini:
		if c.ModelConfig.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when MODEL_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unsupported MODEL_PROVIDER %q, use %q or %q", c.ModelConfig.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.ModelConfig.Timeout <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT must be positive, got %s", c.ModelConfig.Timeout)
	}
	for _, origin := range c.AllowedOrigins() {
		if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
			continue
		}
		return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be \"*\" or start with http:// or https://", origin)
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
