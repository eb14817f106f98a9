// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultPort            = 5000
	DefaultMaxUploadBytes  = 10 << 20 // 10MB
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultDocumentTTL     = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Config represents the server configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	Port           int      `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DatabaseURL    string   `json:"database_url,omitempty"`                          // PostgreSQL connection URL
	MaxUploadBytes int64    `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1"` // Upload size limit
	AllowedOrigins []string `json:"allowed_origins,omitempty" validate:"dive,required"`   // CORS origins; empty allows any

	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	DocumentTTL     Duration `json:"document_ttl,omitempty" validate:"gte=0"`     // How long generated documents stay downloadable
	CleanupInterval Duration `json:"cleanup_interval,omitempty" validate:"gte=0"` // How often expired documents are purged
}

// Duration is a time.Duration that reads "24h"-style strings or whole seconds from JSON.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v) * time.Second)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration: %s", data)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
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

// ApplyEnv overrides fields from environment variables. lookup is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q", v)
		}
		c.Port = port
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.DatabaseURL = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("MAX_UPLOAD_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: invalid MAX_UPLOAD_BYTES %q", v)
		}
		c.MaxUploadBytes = n
	}
	if v, ok := lookup("DOCUMENT_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: invalid DOCUMENT_TTL %q", v)
		}
		c.DocumentTTL = Duration(ttl)
	}
	if v, ok := lookup("ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults,
// falling back to the package defaults when defaults leaves them unset too.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = firstNonZero(defaults.Port, DefaultPort)
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = firstNonZero(defaults.MaxUploadBytes, DefaultMaxUploadBytes)
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if result.LogLevel == "" {
		result.LogLevel = firstNonZero(defaults.LogLevel, DefaultLogLevel)
	}
	if result.LogFormat == "" {
		result.LogFormat = firstNonZero(defaults.LogFormat, DefaultLogFormat)
	}
	if result.DocumentTTL == 0 {
		result.DocumentTTL = firstNonZero(defaults.DocumentTTL, Duration(DefaultDocumentTTL))
	}
	if result.CleanupInterval == 0 {
		result.CleanupInterval = firstNonZero(defaults.CleanupInterval, Duration(DefaultCleanupInterval))
	}

	return result
}

// Load builds the effective configuration: the optional JSON file at path,
// then environment overrides, then defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
