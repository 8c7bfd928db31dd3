package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Redis (rate cache + currency preference)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Outbound rate source
	FXAPIBaseURL   string
	FXFetchTimeout time.Duration

	// Freshness window for the cached rate table
	RateCacheTTL time.Duration

	// Headless CMS
	CMSBaseURL string
	CMSTimeout time.Duration

	// Rate limiting, in ulule/limiter notation (e.g. "120-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("FX_API_BASE_URL", "https://api.fxratesapi.com")
	viper.SetDefault("FX_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "30m")
	viper.SetDefault("CMS_BASE_URL", "https://b2b.arabianvibesllc.com")
	viper.SetDefault("CMS_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		RedisDB:       viper.GetInt("REDIS_DB"),
		FXAPIBaseURL:  viper.GetString("FX_API_BASE_URL"),
		CMSBaseURL:    viper.GetString("CMS_BASE_URL"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
	}

	cfg.FXFetchTimeout = parseDurationOr("FX_FETCH_TIMEOUT", 10*time.Second)
	cfg.RateCacheTTL = parseDurationOr("RATE_CACHE_TTL", 30*time.Minute)
	cfg.CMSTimeout = parseDurationOr("CMS_TIMEOUT", 10*time.Second)

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
