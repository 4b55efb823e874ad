package config

import (
	"crypto/rand"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Env   string
	Share ShareConfig
	Rate  RateConfig
}

type ShareConfig struct {
	Key []byte
	TTL time.Duration
}

type RateConfig struct {
	PerSecond float64
	Burst     int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("SHARE_TTL", "168h"))
	if err != nil {
		return nil, err
	}
	perSecond, err := strconv.ParseFloat(getEnv("RATE_LIMIT", "5"), 64)
	if err != nil {
		return nil, err
	}
	burst, err := strconv.Atoi(getEnv("RATE_BURST", "10"))
	if err != nil {
		return nil, err
	}

	key := []byte(os.Getenv("SHARE_KEY"))
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
		slog.Warn("SHARE_KEY is not set, share tokens will not survive a restart")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
		Share: ShareConfig{
			Key: key,
			TTL: ttl,
		},
		Rate: RateConfig{
			PerSecond: perSecond,
			Burst:     burst,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
