// Package config holds program constants and the badlam.yaml settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Config represents the badlam.yaml configuration.
type Config struct {
	// Color controls ANSI colour in error reports: auto, always or never.
	Color string `yaml:"color"`

	// ContextSpan is the number of source characters shown on each side of
	// an error position.
	ContextSpan int `yaml:"context_span"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Builtins binds the native prelude (null, true, false, dump, new and the
	// built-in classes). When false programs start from an empty environment.
	Builtins bool `yaml:"builtins"`

	// Prelude lists definitions evaluated in order before the program. Each
	// entry sees the entries before it.
	Prelude []PreludeEntry `yaml:"prelude,omitempty"`

	// Dir is the directory of the config file, empty for defaults.
	Dir string `yaml:"-"`
}

// PreludeEntry binds Name to the value of an expression given inline or
// read from a file relative to the config file.
type PreludeEntry struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr,omitempty"`
	File string `yaml:"file,omitempty"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Color:       ColorAuto,
		ContextSpan: DefaultContextSpan,
		LogLevel:    "warn",
		Builtins:    true,
	}
}

// LoadConfig reads and parses a badlam.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig parses badlam.yaml content from bytes. Omitted keys keep their
// defaults. The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig returns the config file to use: explicit if set, then the
// BADLAM_CONFIG environment variable, then badlam.yaml in dir.
// It returns an empty string when there is none.
func FindConfig(explicit, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env, nil
	}
	candidate := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", candidate, err)
	}
	return "", nil
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	if c.ContextSpan < 0 {
		return fmt.Errorf("%s: context_span must not be negative", path)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	seen := make(map[string]int)
	for i, entry := range c.Prelude {
		if entry.Name == "" {
			return fmt.Errorf("%s: prelude[%d]: name is required", path, i)
		}
		if !IsIdentifier(entry.Name) {
			return fmt.Errorf("%s: prelude[%d]: %q is not a valid name", path, i, entry.Name)
		}
		if (entry.Expr == "") == (entry.File == "") {
			return fmt.Errorf("%s: prelude[%d] (%s): exactly one of expr or file is required", path, i, entry.Name)
		}
		if j, ok := seen[entry.Name]; ok {
			return fmt.Errorf("%s: prelude[%d]: %q is already defined by prelude[%d]", path, i, entry.Name, j)
		}
		seen[entry.Name] = i
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log_level %q", s)
}

// IsIdentifier reports whether s lexes as a single identifier.
func IsIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == 'λ':
			return false
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '\''):
		default:
			return false
		}
	}
	return s != ""
}
