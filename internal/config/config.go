// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Database struct {
		Host       string `json:"host" validate:"required"`
		Port       string `json:"port" validate:"required,numeric"`
		User       string `json:"user" validate:"required"`
		Password   string `json:"password"`
		Name       string `json:"name" validate:"required"`
		SSLMode    string `json:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	Server struct {
		Port         string        `json:"port" validate:"required,numeric"`
		ReadTimeout  time.Duration `json:"read_timeout" validate:"gt=0"`
		WriteTimeout time.Duration `json:"write_timeout" validate:"gt=0"`
	} `json:"server"`
	Lexer struct {
		MaxSourceBytes int64 `json:"max_source_bytes" validate:"gt=0"`
		MaxDiffTokens  int   `json:"max_diff_tokens" validate:"gt=0"`
		WrapProgram    bool  `json:"wrap_program"`
	} `json:"lexer"`
	Cache struct {
		TTL         time.Duration `json:"ttl" validate:"gt=0"`
		CleanupFreq time.Duration `json:"cleanup_freq" validate:"gt=0"`
	} `json:"cache"`
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "leolang")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)

	// Lexer limits
	cfg.Lexer.MaxSourceBytes = getInt("LEXER_MAX_SOURCE_BYTES", 1<<20)
	cfg.Lexer.MaxDiffTokens = int(getInt("LEXER_MAX_DIFF_TOKENS", 100000))
	cfg.Lexer.WrapProgram = getBool("LEXER_WRAP_PROGRAM", false)

	// Result cache
	cfg.Cache.TTL = getDuration("CACHE_TTL", 5*time.Minute)
	cfg.Cache.CleanupFreq = getDuration("CACHE_CLEANUP", time.Minute)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg
}

// Validate checks the loaded values against the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
