package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/moneysaver/offset-calculator/internal/domain"
)

// ServerConfig holds the settings of the HTTP API
type ServerConfig struct {
	Addr                   string
	RedisAddr              string
	CacheTTL               time.Duration
	RateLimit              float64
	RateBurst              int
	LogLevel               string
	OpportunityCostPercent float64
}

// DefaultServerConfig returns the settings used when nothing is configured
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:                   ":8080",
		CacheTTL:               10 * time.Minute,
		RateLimit:              5,
		RateBurst:              10,
		LogLevel:               "info",
		OpportunityCostPercent: domain.DefaultOpportunityCostPercent,
	}
}

// LoadServerConfig reads the environment, after loading envFile when it
// exists. A missing file is not an error.
func LoadServerConfig(envFile string) (ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ServerConfig{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return ServerConfigFromEnv(os.LookupEnv)
}

// ServerConfigFromEnv builds the config from a lookup function so tests can
// supply their own environment.
func ServerConfigFromEnv(lookup func(string) (string, bool)) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if v, ok := lookup("MONEYSAVER_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("MONEYSAVER_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup("MONEYSAVER_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MONEYSAVER_CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return ServerConfig{}, fmt.Errorf("MONEYSAVER_CACHE_TTL must be a positive duration, got %q", v)
		}
		cfg.CacheTTL = ttl
	}
	if v, ok := lookup("MONEYSAVER_RATE_LIMIT"); ok && v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || !(limit >= 0) {
			return ServerConfig{}, fmt.Errorf("MONEYSAVER_RATE_LIMIT must be a non-negative number, got %q", v)
		}
		cfg.RateLimit = limit
	}
	if v, ok := lookup("MONEYSAVER_RATE_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return ServerConfig{}, fmt.Errorf("MONEYSAVER_RATE_BURST must be a positive integer, got %q", v)
		}
		cfg.RateBurst = burst
	}
	if v, ok := lookup("MONEYSAVER_OPPORTUNITY_COST"); ok && v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || !(rate >= 0 && rate <= 100) {
			return ServerConfig{}, fmt.Errorf("MONEYSAVER_OPPORTUNITY_COST must be between 0 and 100, got %q", v)
		}
		cfg.OpportunityCostPercent = rate
	}

	return cfg, nil
}
