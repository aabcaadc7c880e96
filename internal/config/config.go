package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBPath        string
	LogLevel      string
	BridgeURL     string
	BridgeToken   string
	WebhookToken  string
	StatsGroupID  string
	WordGroupID   string
	LeetCodeUser  string
	Timezone      string
	RemoteTimeout int // seconds, applies to the LeetCode and bridge clients
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8765"),
		DBPath:        envOr("DB_PATH", "file:bot.db"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		BridgeURL:     envOr("BRIDGE_URL", "http://localhost:3000"),
		BridgeToken:   envOr("BRIDGE_TOKEN", ""),
		WebhookToken:  envOr("WEBHOOK_TOKEN", ""),
		StatsGroupID:  envOr("STATS_GROUP_ID", ""),
		WordGroupID:   envOr("WORD_GROUP_ID", ""),
		LeetCodeUser:  envOr("LEETCODE_USER", ""),
		Timezone:      envOr("TIMEZONE", "Asia/Kolkata"),
		RemoteTimeout: envIntOr("REMOTE_TIMEOUT_SECONDS", 15),
	}
}

// Validate checks that the configuration is complete enough to start the bot.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.BridgeURL == "" {
		return fmt.Errorf("BRIDGE_URL cannot be empty")
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
