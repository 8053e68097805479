package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// #region config

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "WATCHLOOP_"

// defaultConfigPath is used when no explicit path is given and the file exists.
const defaultConfigPath = "watchloop.yaml"

// Config holds the simulator settings. The core packages take their inputs
// as plain arguments; this only configures the drivers.
type Config struct {
	Hour                  int     `koanf:"hour"`                    // 0-23 session start hour
	ParentOverrideMinutes float64 `koanf:"parent_override_minutes"` // <= 0 means unset
	QueryWordCount        int     `koanf:"query_word_count"`
	Fixture               string  `koanf:"fixture"`      // path to a session fixture, empty = built-in sample
	JournalPath           string  `koanf:"journal_path"` // path to the SQLite journal, empty = disabled
	LogLevel              string  `koanf:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Hour:                  21,
		ParentOverrideMinutes: 0,
		QueryWordCount:        8,
		Fixture:               "",
		JournalPath:           "",
		LogLevel:              "info",
	}
}

// HasParentOverride reports whether a positive override was configured.
func (c *Config) HasParentOverride() bool {
	return c.ParentOverrideMinutes > 0
}

// #endregion config

// #region load

// Load builds the configuration in three layers: struct defaults, an
// optional YAML file, then WATCHLOOP_* environment variables on top.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// WATCHLOOP_QUERY_WORD_COUNT -> query_word_count
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the rest of the program assumes.
func (c *Config) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("hour must be 0-23, got %d", c.Hour)
	}
	if c.QueryWordCount < 1 {
		return fmt.Errorf("query_word_count must be positive, got %d", c.QueryWordCount)
	}
	return nil
}

// #endregion load
