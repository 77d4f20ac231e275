package config

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// checkstyleModule is a <module> element of a checkstyle configuration.
type checkstyleModule struct {
	Name       string               `xml:"name,attr"`
	Properties []checkstyleProperty `xml:"property"`
	Modules    []checkstyleModule   `xml:"module"`
}

type checkstyleProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// javadocModules are the checkstyle modules whose properties configure
// the checker.
var javadocModules = map[string]bool{
	"JavadocMethod61b":     true,
	"JavadocMethod":        true,
	"MissingJavadocMethod": true,
}

func decodeCheckstyle(data []byte, cfg *Config) error {
	var root checkstyleModule
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	if err := dec.Decode(&root); err != nil {
		return err
	}
	return applyModule(root, cfg)
}

func applyModule(m checkstyleModule, cfg *Config) error {
	name := moduleName(m.Name)
	for _, p := range m.Properties {
		switch {
		case p.Name == "severity" && (name == "Checker" || javadocModules[name]):
			cfg.Severity = Severity(strings.ToLower(p.Value))
		case javadocModules[name]:
			if err := setProperty(cfg, p.Name, p.Value); err != nil {
				return fmt.Errorf("module %s: %w", m.Name, err)
			}
		}
	}
	for _, child := range m.Modules {
		if err := applyModule(child, cfg); err != nil {
			return err
		}
	}
	return nil
}

// moduleName reduces "ucb.checkstyle.checks.JavadocMethod61bCheck" to
// "JavadocMethod61b".
func moduleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Check")
}

func setProperty(cfg *Config, name, value string) error {
	value = strings.TrimSpace(value)
	flags := map[string]*bool{
		"allowNarrativeParamTags":  &cfg.AllowNarrativeParamTags,
		"allowNarrativeReturnTags": &cfg.AllowNarrativeReturnTags,
		"allowMissingParamTags":    &cfg.AllowMissingParamTags,
		"allowMissingReturnTag":    &cfg.AllowMissingReturnTag,
		"allowMissingThrowsTags":   &cfg.AllowMissingThrowsTags,
		"allowUndeclaredRTE":       &cfg.AllowUndeclaredRTE,
	}
	if flag, ok := flags[name]; ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("property %s: %w", name, err)
		}
		*flag = b
		return nil
	}

	switch name {
	case "unusedParamFormat":
		cfg.UnusedParamFormat = value
	case "ignoreMethodNamesRegex":
		cfg.IgnoreMethodNamesRegex = value
	case "minLineCount":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("property %s: %w", name, err)
		}
		cfg.MinLineCount = n
	case "allowedAnnotations":
		cfg.AllowedAnnotations = splitList(value)
	case "scope":
		cfg.Scope = value
	case "excludeScope":
		cfg.ExcludeScope = value
	}
	// Other properties (tokens, validateThrows, ...) do not apply.
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
