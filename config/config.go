package config

import (
	"os"
	"strconv"
	"time"
)

// MaxAgentTimeout caps the agent wait. LLM_TIMEOUT values above this
// are clamped.
const MaxAgentTimeout = 30 * time.Second

// Config holds every runtime setting, loaded once at startup.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	AgentBaseURL   string
	AgentAPIKey    string
	AgentModel     string
	AgentTimeout   time.Duration
	AgentMaxTokens int

	DatabaseURL string

	SpacesKey      string
	SpacesSecret   string
	SpacesEndpoint string
	SpacesRegion   string
	SpacesBucket   string

	AllowedOrigins []string
}

// Load reads settings from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AgentBaseURL:   os.Getenv("DO_AGENT_BASE_URL"),
		AgentAPIKey:    os.Getenv("DO_AGENT_API_KEY"),
		AgentModel:     os.Getenv("DO_AGENT_MODEL"),
		AgentTimeout:   agentTimeout(),
		AgentMaxTokens: getEnvInt("LLM_MAX_TOKENS", 2000),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SpacesKey:      os.Getenv("DO_SPACES_KEY"),
		SpacesSecret:   os.Getenv("DO_SPACES_SECRET"),
		SpacesEndpoint: os.Getenv("DO_SPACES_ENDPOINT"),
		SpacesRegion:   getEnv("DO_SPACES_REGION", "nyc3"),
		SpacesBucket:   getEnv("DO_SPACES_BUCKET", "garden-planner-logs"),
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// AgentConfigured reports whether the agent call can be attempted.
func (c *Config) AgentConfigured() bool {
	return c.AgentBaseURL != "" && c.AgentAPIKey != ""
}

func agentTimeout() time.Duration {
	d := time.Duration(getEnvInt("LLM_TIMEOUT", 30)) * time.Second
	if d <= 0 || d > MaxAgentTimeout {
		return MaxAgentTimeout
	}
	return d
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
