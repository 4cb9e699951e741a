package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// Ordered fallback chain tried after the primary model, and the HTTP
	// status codes that advance it.
	FallbackModels   []string
	FallbackTriggers []int

	VaultSecret string
	VaultPrefix string
	// TTL applied to the per-user analyzed jobs cache.
	AnalyzedJobsTTLHours int

	CORSOrigins     string
	RateLimitPerMin int
	LogLevel        string
	LogEncoding     string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "careeragentpro"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen-2.5-coder-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "CareerAgentPro"),
		OpenRouterReferer:  getEnv("OPENROUTER_REFERER", "https://careeragentpro.app"),

		FallbackModels: getEnvList("OPENROUTER_FALLBACK_MODELS",
			"deepseek/deepseek-chat-v3-0324:free,meta-llama/llama-3.3-70b-instruct:free"),
		FallbackTriggers: getEnvInts("FALLBACK_TRIGGER_CODES", "402,429,500"),

		VaultSecret:          getEnv("VAULT_SECRET", "careeragentpro_2024_secure_key"),
		VaultPrefix:          getEnv("VAULT_PREFIX", "cap_secure_"),
		AnalyzedJobsTTLHours: getEnvInt("ANALYZED_JOBS_TTL_HOURS", 168),

		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 60),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogEncoding:     getEnv("LOG_ENCODING", "console"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInts(key, def string) []int {
	var out []int
	for _, part := range getEnvList(key, def) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}
