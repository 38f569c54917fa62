package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AuthMode selects which header carries the credential
type AuthMode string

const (
	AuthModeCookie AuthMode = "cookie" // Cookie: connect.sid=<token>
	AuthModeAPIKey AuthMode = "apikey" // X-Api-Key: <token>
)

// Config holds all application configuration
type Config struct {
	// Server
	ServerURL string
	Token     string
	AuthMode  AuthMode

	// Watcher
	WatchSchedule string // cron spec (default: every 15 minutes)
	ServerPort    string

	// Paths
	DatabaseFile string // $CONFIG_DIR/seerrctl.db

	// Logging
	LogLevel  string
	LogFormat string // text or json
}

// New returns a viper instance with .env loading, environment lookup and defaults set.
// Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("AUTH_MODE", string(AuthModeCookie))
	v.SetDefault("WATCH_SCHEDULE", "*/15 * * * *")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	return v
}

// Load loads configuration from environment variables and .env file
func Load(v *viper.Viper) (*Config, error) {
	// Load .env file if it exists (ignore if not found)
	_ = v.ReadInConfig()

	configDir := v.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "seerrctl")
	} else {
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	config := &Config{
		ServerURL:     strings.TrimRight(v.GetString("SERVER_URL"), "/"),
		Token:         v.GetString("TOKEN"),
		AuthMode:      AuthMode(strings.ToLower(v.GetString("AUTH_MODE"))),
		WatchSchedule: v.GetString("WATCH_SCHEDULE"),
		ServerPort:    v.GetString("SERVER_PORT"),
		DatabaseFile:  filepath.Join(configDir, "seerrctl.db"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("SERVER_URL is required")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SERVER_URL must be an absolute URL, got %q", c.ServerURL)
	}
	if c.Token == "" {
		return fmt.Errorf("TOKEN is required")
	}
	switch c.AuthMode {
	case AuthModeCookie, AuthModeAPIKey:
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeCookie, AuthModeAPIKey, c.AuthMode)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

// EnsureConfigDir creates the directory holding the database file
func (c *Config) EnsureConfigDir() error {
	if err := os.MkdirAll(filepath.Dir(c.DatabaseFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
