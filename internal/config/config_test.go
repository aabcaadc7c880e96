package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuvaraja22/wordle-bot/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:          ":8765",
		DBPath:        "test.db",
		LogLevel:      "INFO",
		BridgeURL:     "http://localhost:3000",
		Timezone:      "Asia/Kolkata",
		RemoteTimeout: 15,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:          "",
		DBPath:        "test.db",
		BridgeURL:     "http://localhost:3000",
		RemoteTimeout: 15,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:          ":8765",
		DBPath:        "",
		BridgeURL:     "http://localhost:3000",
		RemoteTimeout: 15,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadTimeout(t *testing.T) {
	cfg := config.Config{
		Addr:          ":8765",
		DBPath:        "test.db",
		BridgeURL:     "http://localhost:3000",
		RemoteTimeout: 0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REMOTE_TIMEOUT_SECONDS")
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("ADDR")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("TIMEZONE")
	os.Unsetenv("REMOTE_TIMEOUT_SECONDS")

	cfg := config.Load()
	assert.Equal(t, ":8765", cfg.Addr)
	assert.Equal(t, "file:bot.db", cfg.DBPath)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.Equal(t, 15, cfg.RemoteTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LEETCODE_USER", "someone")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "30")

	cfg := config.Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "someone", cfg.LeetCodeUser)
	assert.Equal(t, 30, cfg.RemoteTimeout)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 15, cfg.RemoteTimeout)
}
