package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSuppressionsXML(t *testing.T) {
	path := writeFile(t, "suppressions.xml", `<?xml version="1.0"?>
<!DOCTYPE suppressions PUBLIC
    "-//Puppy Crawl//DTD Suppressions 1.1//EN"
    "http://www.puppycrawl.com/dtds/suppressions_1_1.dtd">
<suppressions>
  <suppress checks="JavadocMethod" files="Test\.java"/>
  <suppress message="Missing a Javadoc" files="generated/"/>
</suppressions>
`)

	got, err := LoadSuppressions(path)
	if err != nil {
		t.Fatalf("LoadSuppressions: %v", err)
	}
	want := []Suppression{
		{Checks: "JavadocMethod", Files: `Test\.java`},
		{Message: "Missing a Javadoc", Files: "generated/"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadSuppressions() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSuppressionsYAML(t *testing.T) {
	path := writeFile(t, "suppressions.yml", "suppressions:\n  - files: Scratch\n")

	got, err := LoadSuppressions(path)
	if err != nil {
		t.Fatalf("LoadSuppressions: %v", err)
	}
	if diff := cmp.Diff([]Suppression{{Files: "Scratch"}}, got); diff != "" {
		t.Errorf("LoadSuppressions() mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadSuppressions(writeFile(t, "s.txt", "")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestSuppressor(t *testing.T) {
	cfg := Default()
	cfg.Suppressions = []Suppression{
		{Checks: "JavadocMethod", Files: `Test\.java$`},
		{Message: "^Missing"},
	}
	s, err := cfg.Suppressor()
	if err != nil {
		t.Fatalf("Suppressor: %v", err)
	}

	tests := []struct {
		path, check, message string
		want                 bool
	}{
		{"src/BoardTest.java", "JavadocMethod61b", "Expected an @return tag.", true},
		{"src/Board.java", "JavadocMethod61b", "Expected an @return tag.", false},
		{"src/Board.java", "JavadocMethod61b", "Missing a Javadoc comment.", true},
		{"src/BoardTest.java", "LineLength", "Line is longer", false},
	}
	for _, tt := range tests {
		if got := s.Suppressed(tt.path, tt.check, tt.message); got != tt.want {
			t.Errorf("Suppressed(%s, %s, %s) = %v, want %v", tt.path, tt.check, tt.message, got, tt.want)
		}
	}

	var none *Suppressor
	if none.Suppressed("a", "b", "c") {
		t.Error("nil suppressor should suppress nothing")
	}
}

func TestSuppressorInvalidPattern(t *testing.T) {
	cfg := Default()
	cfg.Suppressions = []Suppression{{Files: "("}}
	if _, err := cfg.Suppressor(); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}
