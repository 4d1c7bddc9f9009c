package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	DB     DBConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	URL string
}

// AIProvider selects which generative-text backend serves generation calls.
type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderOpenAI AIProvider = "openai"
)

// AIConfig holds upstream generation settings. BaseURL and APIKey are
// environment-resolved, never hardcoded.
type AIConfig struct {
	Provider AIProvider
	BaseURL  string
	APIKey   string
	Model    string
	CacheTTL int // seconds; 0 means the default
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	provider := AIProvider(getEnv("AI_PROVIDER", "gemini"))
	if provider != AIProviderGemini && provider != AIProviderOpenAI {
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		DB: DBConfig{
			URL: getEnv("POSTGRES_URL", ""),
		},
		AI: AIConfig{
			Provider: provider,
			BaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:   aiAPIKey(provider),
			Model:    aiModel(provider),
			CacheTTL: getEnvAsInt("GENERATION_CACHE_TTL", 3600),
		},
	}

	return cfg, nil
}

func aiAPIKey(provider AIProvider) string {
	if provider == AIProviderOpenAI {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func aiModel(provider AIProvider) string {
	if provider == AIProviderOpenAI {
		return getEnv("OPENAI_MODEL", "gpt-4o-mini")
	}
	return getEnv("GEMINI_MODEL", "gemini-2.5-flash")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
