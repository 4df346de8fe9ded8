package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AIConfig holds the generation gateway settings. The gateway speaks an
// OpenAI-compatible chat/completions protocol with forced tool calls.
type AIConfig struct {
	GatewayURL string
	APIKey     string
	Model      string
	Timeout    time.Duration
}

type S3Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

type AppConfig struct {
	Port               string
	Environment        string
	Database           DatabaseConfig
	JWTSecret          string
	JWTExpirationHours int
	AI                 AIConfig
	S3                 S3Config
	RateLimitPerMin    int
	FeedCacheTTL       time.Duration
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "careermatch"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// Load reads the full configuration from the environment once. Handlers and
// services receive this struct explicitly instead of reading env vars ad hoc.
func Load() AppConfig {
	expHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	if expHours == 0 {
		expHours = 24
	}

	timeoutSec, _ := strconv.Atoi(getEnv("AI_GATEWAY_TIMEOUT_SECONDS", "60"))
	if timeoutSec == 0 {
		timeoutSec = 60
	}

	ratePerMin, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	if ratePerMin == 0 {
		ratePerMin = 60
	}

	cacheTTLSec, _ := strconv.Atoi(getEnv("FEED_CACHE_TTL_SECONDS", "300"))

	return AppConfig{
		Port:               getEnv("PORT", "8081"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		Database:           GetDatabaseConfig(),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpirationHours: expHours,
		AI: AIConfig{
			GatewayURL: getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
			APIKey:     getEnv("AI_GATEWAY_API_KEY", ""),
			Model:      getEnv("AI_GATEWAY_MODEL", "google/gemini-3-flash-preview"),
			Timeout:    time.Duration(timeoutSec) * time.Second,
		},
		S3: S3Config{
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:    getEnv("AWS_REGION", ""),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
		},
		RateLimitPerMin: ratePerMin,
		FeedCacheTTL:    time.Duration(cacheTTLSec) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
