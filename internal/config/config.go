package config

import (
	"os"
	"strconv"
	"time"
)

// Deployment modes resolved once at startup.
const (
	ModeDirect     = "direct"
	ModeProxy      = "proxy"
	ModeRestricted = "restricted"
)

// Cache store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Logging
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "json" or "text"

	// Remote generation service
	TogetherAPIKey   string
	TogetherEndpoint string
	TogetherModel    string
	ProxyURL         string // Same-origin proxy; when set no credential is sent
	RemoteTimeout    time.Duration

	// Deployment
	DeploymentPlatform string // "local", "vercel", "netlify", ...
	APIRestricted      bool   // Skip the remote call entirely

	// Response cache
	CacheCapacity int
	CacheStore    string // "memory", "redis" or "postgres"
	CacheStoreKey string
	RedisURL      string
	DatabaseURL   string

	// Rate limiting, requests per minute per IP
	RateLimitMax int

	// Optional YAML corpus replacing the built-in excuses
	CorpusFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		TogetherAPIKey:   getEnv("TOGETHER_API_KEY", ""),
		TogetherEndpoint: getEnv("TOGETHER_ENDPOINT", "https://api.together.xyz/v1/chat/completions"),
		TogetherModel:    getEnv("TOGETHER_MODEL", "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"),
		ProxyURL:         getEnv("TOGETHER_PROXY_URL", ""),
		RemoteTimeout:    getEnvDuration("REMOTE_TIMEOUT", 15*time.Second),

		DeploymentPlatform: getEnv("DEPLOYMENT_PLATFORM", "local"),
		APIRestricted:      getEnvBool("API_RESTRICTED", false),

		CacheCapacity: getEnvInt("CACHE_CAPACITY", 50),
		CacheStore:    getEnv("CACHE_STORE", StoreMemory),
		CacheStoreKey: getEnv("CACHE_STORE_KEY", "excuseCache"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/excuses?sslmode=disable"),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		CorpusFile:   getEnv("CORPUS_FILE", "corpus.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Mode returns how the remote generation service is reached.
// An explicit restriction wins; without a key or a proxy there is nothing to call.
func (c *Config) Mode() string {
	switch {
	case c.APIRestricted:
		return ModeRestricted
	case c.ProxyURL != "":
		return ModeProxy
	case c.TogetherAPIKey != "":
		return ModeDirect
	default:
		return ModeRestricted
	}
}

// RemoteURL returns the URL generation requests are sent to for the resolved mode.
func (c *Config) RemoteURL() string {
	if c.Mode() == ModeProxy {
		return c.ProxyURL
	}
	return c.TogetherEndpoint
}
