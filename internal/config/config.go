// Package config provides configuration loading and validation for the dashboard server.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yaswanthreddy/portfolio/internal/server/middleware"
)

// SMTPConfig holds mail settings for contact notifications.
// Notifications go to the log when Host is empty.
type SMTPConfig struct {
	Host     string `json:"host,omitempty"`
	Port     string `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	To       string `json:"to,omitempty"` // Where contact messages are delivered
}

// Config represents the server configuration that can be loaded from a JSON file
// and overridden by environment variables. All fields are optional.
type Config struct {
	Port        int      `json:"port,omitempty"`
	LogLevel    string   `json:"log_level,omitempty"`    // debug, info, warn or error
	ContentPath string   `json:"content_path,omitempty"` // JSON or YAML portfolio; built-in content when empty
	TemplateDir string   `json:"template_dir,omitempty"` // Overrides the built-in card templates
	CORSOrigins []string `json:"cors_origins,omitempty"`
	// CIDRs or addresses of reverse proxies whose forwarding headers are trusted.
	TrustedProxies []string `json:"trusted_proxies,omitempty"`

	// Contact storage: DatabaseURL wins over SQLitePath; neither means no storage.
	DatabaseURL string `json:"database_url,omitempty"`
	SQLitePath  string `json:"sqlite_path,omitempty"`

	SMTP      SMTPConfig `json:"smtp,omitempty"`
	IPHashKey string     `json:"ip_hash_key,omitempty"` // Key for hashing submitter IPs, at most 64 bytes
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:        8080,
		LogLevel:    "info",
		CORSOrigins: []string{"http://localhost:8080"},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables
// leave the corresponding field empty so the result can be merged over a file config.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:       os.Getenv("LOG_LEVEL"),
		ContentPath:    os.Getenv("CONTENT_PATH"),
		TemplateDir:    os.Getenv("TEMPLATE_DIR"),
		CORSOrigins:    splitCSV(os.Getenv("CORS_ORIGINS")),
		TrustedProxies: splitCSV(os.Getenv("TRUSTED_PROXIES")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       os.Getenv("TO_EMAIL"),
		},
		IPHashKey: os.Getenv("IP_HASH_KEY"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: PORT must be a number, got %q", v)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.LogLevel != "" {
		if _, err := ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}

	if c.ContentPath != "" {
		if _, err := os.Stat(c.ContentPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.ContentPath)
		}
	}

	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: template_dir is not a directory: %s", c.TemplateDir)
		}
	}

	if c.SMTP.Host != "" {
		var missing []string
		if c.SMTP.Username == "" {
			missing = append(missing, "smtp.username")
		}
		if c.SMTP.Password == "" {
			missing = append(missing, "smtp.password")
		}
		if c.SMTP.To == "" {
			missing = append(missing, "smtp.to")
		}
		if len(missing) > 0 {
			return fmt.Errorf("config error: smtp.host is set but %s missing", strings.Join(missing, ", "))
		}
	}

	if _, err := middleware.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("config error: 'trusted_proxies': %w", err)
	}

	if len(c.IPHashKey) > 64 {
		return fmt.Errorf("config error: 'ip_hash_key' must be at most 64 bytes")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Layering env over file over Defaults() is done by chaining calls.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.ContentPath == "" {
		result.ContentPath = defaults.ContentPath
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}
	if len(result.TrustedProxies) == 0 {
		result.TrustedProxies = defaults.TrustedProxies
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.IPHashKey == "" {
		result.IPHashKey = defaults.IPHashKey
	}

	// SMTP settings are merged as a unit so credentials never mix sources
	if result.SMTP.Host == "" {
		result.SMTP = defaults.SMTP
	}
	if result.SMTP.Port == "" {
		result.SMTP.Port = defaults.SMTP.Port
	}

	return result
}

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config error: invalid log_level %q", name)
	}
	return level, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
