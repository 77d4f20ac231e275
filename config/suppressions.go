package config

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Suppression silences diagnostics. Each field is a regular expression
// searched in the file path, the check name and the message; empty
// fields match everything.
type Suppression struct {
	Files   string `yaml:"files" toml:"files" json:"files" xml:"files,attr"`
	Checks  string `yaml:"checks" toml:"checks" json:"checks" xml:"checks,attr"`
	Message string `yaml:"message" toml:"message" json:"message" xml:"message,attr"`
}

// LoadSuppressions reads a checkstyle suppressions XML file, or a YAML
// or TOML file with a top-level "suppressions" list.
func LoadSuppressions(path string) ([]Suppression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suppressions: %w", err)
	}

	var doc struct {
		Suppressions []Suppression `yaml:"suppressions" toml:"suppressions" xml:"suppress"`
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		dec := xml.NewDecoder(bytes.NewReader(data))
		dec.Strict = false
		err = dec.Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		_, err = toml.Decode(string(data), &doc)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse suppressions: %w", path, err)
	}
	return doc.Suppressions, nil
}

type suppressionRule struct {
	files, checks, message *regexp.Regexp
}

// Suppressor decides whether a diagnostic is suppressed.
type Suppressor struct {
	rules []suppressionRule
}

// Suppressor compiles the configured suppressions.
func (c *Config) Suppressor() (*Suppressor, error) {
	s := &Suppressor{}
	for i, sup := range c.Suppressions {
		var rule suppressionRule
		var err error
		if rule.files, err = compileOptional(sup.Files); err != nil {
			return nil, fmt.Errorf("suppression %d files: %w", i, err)
		}
		if rule.checks, err = compileOptional(sup.Checks); err != nil {
			return nil, fmt.Errorf("suppression %d checks: %w", i, err)
		}
		if rule.message, err = compileOptional(sup.Message); err != nil {
			return nil, fmt.Errorf("suppression %d message: %w", i, err)
		}
		s.rules = append(s.rules, rule)
	}
	return s, nil
}

// Suppressed reports whether any rule matches. Paths are compared with
// forward slashes on every platform.
func (s *Suppressor) Suppressed(path, checkName, message string) bool {
	if s == nil {
		return false
	}
	path = filepath.ToSlash(path)
	for _, r := range s.rules {
		if matches(r.files, path) && matches(r.checks, checkName) && matches(r.message, message) {
			return true
		}
	}
	return false
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

func matches(re *regexp.Regexp, s string) bool {
	return re == nil || re.MatchString(s)
}
