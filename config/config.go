// Package config loads the checker configuration from YAML, TOML or a
// checkstyle configuration XML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/java"
)

var (
	ErrUnknownFormat   = errors.New("unknown configuration format")
	ErrInvalidSeverity = errors.New("invalid severity")
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityError:
		return SeverityError, nil
	case SeverityWarning:
		return SeverityWarning, nil
	case SeverityInfo:
		return SeverityInfo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// Config is the on-disk configuration. Field names follow the checkstyle
// property names so the same names work in every format.
type Config struct {
	AllowNarrativeParamTags  bool   `yaml:"allowNarrativeParamTags" toml:"allowNarrativeParamTags" json:"allowNarrativeParamTags"`
	AllowNarrativeReturnTags bool   `yaml:"allowNarrativeReturnTags" toml:"allowNarrativeReturnTags" json:"allowNarrativeReturnTags"`
	UnusedParamFormat        string `yaml:"unusedParamFormat" toml:"unusedParamFormat" json:"unusedParamFormat"`
	IgnoreMethodNamesRegex   string `yaml:"ignoreMethodNamesRegex" toml:"ignoreMethodNamesRegex" json:"ignoreMethodNamesRegex"`

	AllowMissingParamTags  bool `yaml:"allowMissingParamTags" toml:"allowMissingParamTags" json:"allowMissingParamTags"`
	AllowMissingReturnTag  bool `yaml:"allowMissingReturnTag" toml:"allowMissingReturnTag" json:"allowMissingReturnTag"`
	AllowMissingThrowsTags bool `yaml:"allowMissingThrowsTags" toml:"allowMissingThrowsTags" json:"allowMissingThrowsTags"`
	AllowUndeclaredRTE     bool `yaml:"allowUndeclaredRTE" toml:"allowUndeclaredRTE" json:"allowUndeclaredRTE"`

	MinLineCount       int      `yaml:"minLineCount" toml:"minLineCount" json:"minLineCount"`
	AllowedAnnotations []string `yaml:"allowedAnnotations" toml:"allowedAnnotations" json:"allowedAnnotations"`
	Scope              string   `yaml:"scope" toml:"scope" json:"scope"`
	ExcludeScope       string   `yaml:"excludeScope" toml:"excludeScope" json:"excludeScope"`

	Severity     Severity      `yaml:"severity" toml:"severity" json:"severity"`
	Workers      int           `yaml:"workers" toml:"workers" json:"workers"`
	Suppressions []Suppression `yaml:"suppressions" toml:"suppressions" json:"suppressions"`
}

func Default() *Config {
	return &Config{
		MinLineCount:       -1,
		AllowedAnnotations: []string{"Override"},
		Scope:              string(java.VisibilityPrivate),
		Severity:           SeverityError,
	}
}

// Load reads a configuration file, choosing the decoder by extension.
// Options missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".xml":
		if err := decodeCheckstyle(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to parse checkstyle configuration: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that Engine and Suppressor would reject.
func (c *Config) Validate() error {
	if _, err := c.Engine(); err != nil {
		return err
	}
	if c.Severity != "" {
		if _, err := ParseSeverity(string(c.Severity)); err != nil {
			return err
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	_, err := c.Suppressor()
	return err
}

// Engine compiles the options for check.New. Name patterns must match
// whole names, as with Java's Matcher.matches.
func (c *Config) Engine() (check.Config, error) {
	out := check.Config{
		AllowNarrativeParamTags:  c.AllowNarrativeParamTags,
		AllowNarrativeReturnTags: c.AllowNarrativeReturnTags,
		AllowMissingParamTags:    c.AllowMissingParamTags,
		AllowMissingReturnTag:    c.AllowMissingReturnTag,
		AllowMissingThrowsTags:   c.AllowMissingThrowsTags,
		AllowUndeclaredRTE:       c.AllowUndeclaredRTE,
		MinLineCount:             c.MinLineCount,
		AllowedAnnotations:       c.AllowedAnnotations,
	}

	var err error
	if out.UnusedParamFormat, err = compileWhole("unusedParamFormat", c.UnusedParamFormat); err != nil {
		return check.Config{}, err
	}
	if out.IgnoreMethodNamesRegex, err = compileWhole("ignoreMethodNamesRegex", c.IgnoreMethodNamesRegex); err != nil {
		return check.Config{}, err
	}

	out.Scope = java.VisibilityPrivate
	if c.Scope != "" {
		if out.Scope, err = java.ParseVisibility(c.Scope); err != nil {
			return check.Config{}, fmt.Errorf("scope: %w", err)
		}
	}
	if c.ExcludeScope != "" {
		if out.ExcludeScope, err = java.ParseVisibility(c.ExcludeScope); err != nil {
			return check.Config{}, fmt.Errorf("excludeScope: %w", err)
		}
	}
	return out, nil
}

// SeverityOrDefault returns the configured severity, or error.
func (c *Config) SeverityOrDefault() Severity {
	if c.Severity == "" {
		return SeverityError
	}
	s, err := ParseSeverity(string(c.Severity))
	if err != nil {
		return SeverityError
	}
	return s
}

func compileWhole(option, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", option, err)
	}
	return re, nil
}
