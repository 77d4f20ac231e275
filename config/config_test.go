package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/style61b/java"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "style.yaml", `
allowNarrativeParamTags: true
allowNarrativeReturnTags: true
unusedParamFormat: "unused.*"
severity: warning
workers: 4
suppressions:
  - files: "Test\\.java$"
    checks: JavadocMethod
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.AllowNarrativeParamTags = true
	want.AllowNarrativeReturnTags = true
	want.UnusedParamFormat = "unused.*"
	want.Severity = SeverityWarning
	want.Workers = 4
	want.Suppressions = []Suppression{{Files: `Test\.java$`, Checks: "JavadocMethod"}}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "style.toml", `
allowUndeclaredRTE = true
minLineCount = 3
allowedAnnotations = ["Override", "Test"]
scope = "protected"
excludeScope = "public"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	engine, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if !engine.AllowUndeclaredRTE || engine.MinLineCount != 3 {
		t.Errorf("unexpected engine config %+v", engine)
	}
	if engine.Scope != java.VisibilityProtected || engine.ExcludeScope != java.VisibilityPublic {
		t.Errorf("expected protected scope excluding public, got %q/%q", engine.Scope, engine.ExcludeScope)
	}
	if diff := cmp.Diff([]string{"Override", "Test"}, engine.AllowedAnnotations); diff != "" {
		t.Errorf("allowedAnnotations mismatch (-want +got):\n%s", diff)
	}
}

const checkstyleXML = `<?xml version="1.0"?>
<!DOCTYPE module PUBLIC
    "-//Puppy Crawl//DTD Check Configuration 1.3//EN"
    "http://www.puppycrawl.com/dtds/configuration_1_3.dtd">
<module name="Checker">
  <property name="severity" value="warning"/>
  <module name="TreeWalker">
    <module name="LineLength">
      <property name="max" value="80"/>
      <property name="severity" value="info"/>
    </module>
    <module name="ucb.checkstyle.checks.JavadocMethod61bCheck">
      <property name="allowNarrativeParamTags" value="true"/>
      <property name="allowMissingThrowsTags" value="true"/>
      <property name="unusedParamFormat" value="^dummy.*"/>
      <property name="minLineCount" value="2"/>
      <property name="allowedAnnotations" value="Override, Test"/>
      <property name="tokens" value="METHOD_DEF, CTOR_DEF"/>
    </module>
  </module>
</module>
`

func TestLoadCheckstyleXML(t *testing.T) {
	cfg, err := Load(writeFile(t, "checks.xml", checkstyleXML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Severity = SeverityWarning
	want.AllowNarrativeParamTags = true
	want.AllowMissingThrowsTags = true
	want.UnusedParamFormat = "^dummy.*"
	want.MinLineCount = 2
	want.AllowedAnnotations = []string{"Override", "Test"}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "style.ini", "x=1")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.yaml", "severity: loud\n")); !errors.Is(err, ErrInvalidSeverity) {
		t.Errorf("expected ErrInvalidSeverity, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.yaml", "unusedParamFormat: \"(\"\n")); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "scope: everywhere\n")); err == nil {
		t.Error("expected an error for an invalid scope")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestEngineAnchorsPatterns(t *testing.T) {
	cfg := Default()
	cfg.IgnoreMethodNamesRegex = "main|test.*"

	engine, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	re := engine.IgnoreMethodNamesRegex
	for name, want := range map[string]bool{"main": true, "testMove": true, "domain": false, "mainly": false} {
		if got := re.MatchString(name); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", name, got, want)
		}
	}
}
