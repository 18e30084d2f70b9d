package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Lexer.MaxSourceBytes)
	assert.Equal(t, 100000, cfg.Lexer.MaxDiffTokens)
	assert.False(t, cfg.Lexer.WrapProgram)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Contains(t, cfg.DSN(), "dbname=leolang")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LEXER_MAX_SOURCE_BYTES", "4096")
	t.Setenv("LEXER_MAX_DIFF_TOKENS", "500")
	t.Setenv("LEXER_WRAP_PROGRAM", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int64(4096), cfg.Lexer.MaxSourceBytes)
	assert.Equal(t, 500, cfg.Lexer.MaxDiffTokens)
	assert.True(t, cfg.Lexer.WrapProgram)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LEXER_MAX_SOURCE_BYTES", "0")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
	assert.Contains(t, err.Error(), "MaxSourceBytes")
}
