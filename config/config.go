package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 60
	DefaultRefreshTokenExpiryMin = 10080 // 7 days
	DefaultStaySignedInExpiryMin = 43200 // 30 days
	DefaultLoginMaxAttempts      = 5
	DefaultLoginWindowMinutes    = 15
	DefaultRateLimitRequests     = 20
	DefaultRateLimitWindowSec    = 60
	DefaultFlagCacheTTLSec       = 60
)

type Config struct {
	Env                   string
	Port                  string
	DBURL                 string
	RedisURL              string
	AccessTokenSecret     string
	RefreshTokenSecret    string
	AccessExpiryMin       int
	RefreshExpiryMin      int
	StaySignedInExpiryMin int
	LoginMaxAttempts      int
	LoginWindowMinutes    int
	RateLimitRequests     int
	RateLimitWindowSec    int
	FlagCacheTTLSec       int
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, with real
// environment variables taking precedence over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No env file loaded from %s: %v", envFile, err)
	}

	return &Config{
		Env:                   env,
		Port:                  getEnv("PORT", DefaultPort),
		DBURL:                 mustGetEnv("DB_URL"),
		RedisURL:              getEnv("REDIS_URL", ""),
		AccessTokenSecret:     mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:    mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:       getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:      getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		StaySignedInExpiryMin: getEnvAsInt("STAY_SIGNED_IN_EXPIRY", DefaultStaySignedInExpiryMin),
		LoginMaxAttempts:      getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginWindowMinutes:    getEnvAsInt("LOGIN_WINDOW_MINUTES", DefaultLoginWindowMinutes),
		RateLimitRequests:     getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
		RateLimitWindowSec:    getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", DefaultRateLimitWindowSec),
		FlagCacheTTLSec:       getEnvAsInt("FLAG_CACHE_TTL_SECONDS", DefaultFlagCacheTTLSec),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return val
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
