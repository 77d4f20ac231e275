package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const documented = `package game;

/** A board. */
public class Board {
    /**
     * Returns the size.
     * @return the number of rows
     */
    public int size() {
        return 8;
    }
}
`

const undocumented = `package game;

public class Piece {
    public int rank(int file) {
        return file;
    }
}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJava(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func code(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if err != nil {
		return 2
	}
	return 0
}

func TestCheckCleanFile(t *testing.T) {
	path := writeJava(t, t.TempDir(), "Board.java", documented)

	out, err := run(t, "--color=never", path)
	if err != nil {
		t.Fatalf("expected success, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "Audit done.") {
		t.Errorf("expected an audit log, got:\n%s", out)
	}
}

func TestCheckReportsDiagnostics(t *testing.T) {
	path := writeJava(t, t.TempDir(), "Piece.java", undocumented)

	out, err := run(t, "--color=never", path)
	if got := code(err); got != 1 {
		t.Fatalf("expected exit status 1, got %d (%v)", got, err)
	}
	want := "[ERROR] " + path + ":4:5: Missing a Javadoc comment. [JavadocMethod61b]"
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output:\n%s", want, out)
	}
}

func TestCheckWarningSeverityExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := writeJava(t, dir, "Piece.java", undocumented)
	cfg := filepath.Join(dir, "style61b.toml")
	if err := os.WriteFile(cfg, []byte("severity = \"warning\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "-c", cfg, "-f", "json", path)
	if err != nil {
		t.Fatalf("warnings should not fail the run, got %v", err)
	}
	if !strings.Contains(out, `"severity": "warning"`) {
		t.Errorf("expected JSON with warning severity, got:\n%s", out)
	}
}

func TestCheckUsageErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeJava(t, dir, "Board.java", documented)

	tests := map[string][]string{
		"no arguments":   {},
		"unknown format": {"-f", "html", path},
		"missing path":   {filepath.Join(dir, "nope")},
		"missing config": {"-c", filepath.Join(dir, "nope.yaml"), path},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			if got := code(err); got != 2 {
				t.Errorf("expected exit status 2, got %d (%v)", got, err)
			}
		})
	}
}

func TestRecordAndReport(t *testing.T) {
	dir := t.TempDir()
	path := writeJava(t, dir, "Piece.java", undocumented)
	db := filepath.Join(dir, "runs.db")

	if _, err := run(t, "--record", db, "-f", "json", path); code(err) != 1 {
		t.Fatalf("expected exit status 1, got %v", err)
	}

	out, err := run(t, "report", "--db", db)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"Run 1 at", "1 files, 0 failed, 1 diagnostics", "MissingJavadoc", path} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report:\n%s", want, out)
		}
	}

	if _, err := run(t, "report", "--db", db, "--run", "7"); code(err) != 2 {
		t.Errorf("expected exit status 2 for an unknown run, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "style61b "+version {
		t.Errorf("unexpected version output %q", out)
	}
}
