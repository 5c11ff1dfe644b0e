package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Sagaw22/URPXconverter/internal/convert"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth; the API runs open when empty.
	APIKey string `yaml:"api_key"`

	// Conversion defaults
	OutputDir   string `yaml:"output_dir"`
	DefaultMode string `yaml:"default_mode"`

	// Worker pool
	WorkerCount  int `yaml:"worker_count"`
	MaxQueueSize int `yaml:"max_queue_size"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Batch state
	BatchTTL time.Duration `yaml:"batch_ttl"`
}

// Load builds a Config from environment variables, falling back to
// defaults.
func Load() Config {
	cfg := Config{
		Port: envOr("URPX_PORT", "8091"),

		APIKey: os.Getenv("URPX_API_KEY"),

		OutputDir:   envOr("URPX_OUTPUT_DIR", "."),
		DefaultMode: envOr("URPX_DEFAULT_MODE", string(convert.ModeScript)),

		WorkerCount:  envInt("URPX_WORKER_COUNT", 2),
		MaxQueueSize: envInt("URPX_MAX_QUEUE_SIZE", 50),

		MaxUploadBytes: envInt64("URPX_MAX_UPLOAD_BYTES", 16777216), // 16MB

		BatchTTL: envDuration("URPX_BATCH_TTL", 1*time.Hour),
	}
	applyDefaults(&cfg)
	return cfg
}

// LoadFile reads a YAML config file, then applies environment
// overrides on top so the environment always wins.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if v := os.Getenv("URPX_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("URPX_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("URPX_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("URPX_DEFAULT_MODE"); v != "" {
		cfg.DefaultMode = v
	}
	if v := os.Getenv("URPX_WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WorkerCount = n
		}
	}
	if v := os.Getenv("URPX_MAX_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxQueueSize = n
		}
	}
	if v := os.Getenv("URPX_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("URPX_BATCH_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.BatchTTL = d
		}
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8091"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = string(convert.ModeScript)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16777216
	}
	if cfg.BatchTTL <= 0 {
		cfg.BatchTTL = 1 * time.Hour
	}
}

func (c Config) Validate() error {
	if !convert.Mode(c.DefaultMode).Valid() {
		return fmt.Errorf("default_mode must be %q or %q, got %q",
			convert.ModeScript, convert.ModeText, c.DefaultMode)
	}
	info, err := os.Stat(c.OutputDir)
	if err != nil {
		return fmt.Errorf("output_dir %q: %w", c.OutputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output_dir %q is not a directory", c.OutputDir)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
