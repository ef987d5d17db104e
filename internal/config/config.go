// Package config provides configuration loading and validation for the job board.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds the board configuration. It can be loaded from a YAML or JSON
// file and overlaid with environment variables. Zero values mean "use the default".
type Config struct {
	Port           int    `json:"port,omitempty" yaml:"port,omitempty"`
	StaticDir      string `json:"static_dir,omitempty" yaml:"static_dir,omitempty"` // Directory served at /
	LogLevel       string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	RecommendLimit int    `json:"recommend_limit,omitempty" yaml:"recommend_limit,omitempty"` // Jobs shown on the student dashboard
	SeedDemoData   *bool  `json:"seed_demo_data,omitempty" yaml:"seed_demo_data,omitempty"`   // Seed admin account and sample jobs

	Store StoreConfig `json:"store" yaml:"store"`
}

// StoreConfig selects and configures the key-value store backend.
type StoreConfig struct {
	Backend       string `json:"backend,omitempty" yaml:"backend,omitempty"` // memory, redis or postgres
	RedisAddr     string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty" yaml:"redis_db,omitempty"`
	RedisPrefix   string `json:"redis_prefix,omitempty" yaml:"redis_prefix,omitempty"`
	DatabaseURL   string `json:"database_url,omitempty" yaml:"database_url,omitempty"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	seed := true
	return Config{
		Port:           3000,
		StaticDir:      "public",
		LogLevel:       "info",
		RecommendLimit: 6,
		SeedDemoData:   &seed,
		Store: StoreConfig{
			Backend: BackendMemory,
		},
	}
}

// LoadConfig loads configuration from a YAML (.yaml, .yml) or JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load resolves the effective configuration: the optional file at path,
// then environment overrides, then defaults for anything still unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides fields with any of PORT, STATIC_DIR, LOG_LEVEL,
// RECOMMEND_LIMIT, SEED_DEMO_DATA, STORE_BACKEND, REDIS_ADDR, REDIS_PASSWORD,
// REDIS_DB, REDIS_PREFIX and DATABASE_URL that are set.
func (c *Config) ApplyEnv() error {
	if err := envInt("PORT", &c.Port); err != nil {
		return err
	}
	envString("STATIC_DIR", &c.StaticDir)
	envString("LOG_LEVEL", &c.LogLevel)
	if err := envInt("RECOMMEND_LIMIT", &c.RecommendLimit); err != nil {
		return err
	}
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_DEMO_DATA: %v", err)
		}
		c.SeedDemoData = &seed
	}

	envString("STORE_BACKEND", &c.Store.Backend)
	envString("REDIS_ADDR", &c.Store.RedisAddr)
	envString("REDIS_PASSWORD", &c.Store.RedisPassword)
	envString("REDIS_PREFIX", &c.Store.RedisPrefix)
	if err := envInt("REDIS_DB", &c.Store.RedisDB); err != nil {
		return err
	}
	envString("DATABASE_URL", &c.Store.DatabaseURL)
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.RecommendLimit < 0 {
		return fmt.Errorf("config error: 'recommend_limit' must be non-negative")
	}

	switch c.Store.Backend {
	case "", BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("config error: 'redis_addr' is required for the redis store")
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	default:
		return fmt.Errorf("config error: unknown store backend %q", c.Store.Backend)
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.RecommendLimit == 0 {
		result.RecommendLimit = defaults.RecommendLimit
	}
	if result.SeedDemoData == nil {
		result.SeedDemoData = defaults.SeedDemoData
	}
	if result.Store.Backend == "" {
		result.Store.Backend = defaults.Store.Backend
	}

	return result
}

// ShouldSeed reports whether the demo admin and sample jobs should be created on startup.
func (c *Config) ShouldSeed() bool {
	return c.SeedDemoData == nil || *c.SeedDemoData
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	*dst = n
	return nil
}
