// Package config handles the abnt global configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/abnt/config.yml.
// Every key can be overridden by its environment variable.
type Config struct {
	SkipPrefix string `yaml:"skip-prefix,omitempty" json:"skip_prefix" env:"ABNT_SKIP_PREFIX" env-default:"Self"`
	Heading    string `yaml:"heading,omitempty"     json:"heading"     env:"ABNT_HEADING"     env-default:"Referências"`
	DBPath     string `yaml:"db-path,omitempty"     json:"db_path"     env:"ABNT_DB_PATH"`
	LogLevel   string `yaml:"log-level,omitempty"   json:"log_level"   env:"ABNT_LOG_LEVEL"   env-default:"warn"`
	LogFormat  string `yaml:"log-format,omitempty"  json:"log_format"  env:"ABNT_LOG_FORMAT"  env-default:"text"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME and XDG_CACHE_HOME.
	ConfigDir = "abnt"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DBFile is the citation cache file name.
	DBFile = "citations.db"
	// PathEnv overrides the config file location.
	PathEnv = "ABNT_CONFIG"
)

// Keys lists the configuration keys in display order.
var Keys = []string{"skip-prefix", "heading", "db-path", "log-level", "log-format"}

// ValidLogLevels lists the accepted log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted log-format values.
var ValidLogFormats = []string{"text", "json"}

// ErrUnknownKey is returned for a configuration key not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Path returns the path to the config file. ABNT_CONFIG takes precedence;
// otherwise XDG_CONFIG_HOME is respected, defaulting to ~/.config/abnt/config.yml.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), ConfigDir, ConfigFile)
}

// DefaultDBPath returns the citation cache location used when db-path is
// not configured: $XDG_CACHE_HOME/abnt/citations.db.
func DefaultDBPath() string {
	return filepath.Join(xdgDir("XDG_CACHE_HOME", ".cache"), ConfigDir, DBFile)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

// Load reads the configuration file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A missing config file is not an error unless ABNT_CONFIG names it.
func Load() (*Config, error) {
	var cfg Config

	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if os.Getenv(PathEnv) != "" {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	cfg.DBPath = ExpandPath(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads only the YAML file at path, without defaults or
// environment overrides. A missing file yields an empty config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	return ValidateLogFormat(c.LogFormat)
}

// Get returns the value of a configuration key.
func (c *Config) Get(key string) (string, error) {
	p, err := c.field(key)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set validates and assigns a configuration key.
func (c *Config) Set(key, value string) error {
	p, err := c.field(key)
	if err != nil {
		return err
	}

	switch key {
	case "log-level":
		err = ValidateLogLevel(value)
	case "log-format":
		err = ValidateLogFormat(value)
	}
	if err != nil {
		return err
	}

	*p = value
	return nil
}

func (c *Config) field(key string) (*string, error) {
	switch key {
	case "skip-prefix":
		return &c.SkipPrefix, nil
	case "heading":
		return &c.Heading, nil
	case "db-path":
		return &c.DBPath, nil
	case "log-level":
		return &c.LogLevel, nil
	case "log-format":
		return &c.LogFormat, nil
	}
	return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
}

// ValidateLogLevel checks that the level value is valid.
func ValidateLogLevel(level string) error {
	if level == "" || slices.Contains(ValidLogLevels, strings.ToLower(level)) {
		return nil
	}
	return fmt.Errorf("invalid log-level: %s (valid: %v)", level, ValidLogLevels)
}

// ValidateLogFormat checks that the format value is valid.
func ValidateLogFormat(format string) error {
	if format == "" || slices.Contains(ValidLogFormats, strings.ToLower(format)) {
		return nil
	}
	return fmt.Errorf("invalid log-format: %s (valid: %v)", format, ValidLogFormats)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
