package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java/codebase"
)

func sampleResults() []codebase.Result {
	return []codebase.Result{
		{
			Path: "game/Board.java",
			Diagnostics: []check.Diagnostic{
				{Kind: check.MissingJavadoc, Line: 12, Column: 5},
				{Kind: check.ExpectedReturnTag, Line: 20, Column: 16},
			},
		},
		{Path: "game/Broken.java", Err: errors.New("read failed")},
		{Path: "game/Clean.java"},
	}
}

func TestPlainEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := New("plain", &buf, Options{Color: ColorNever})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := enc.Encode(sampleResults()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := `Starting audit...
[ERROR] game/Board.java:12:5: Missing a Javadoc comment. [JavadocMethod61b]
[ERROR] game/Board.java:20:16: Expected an @return tag. [JavadocMethod61b]
[ERROR] game/Broken.java: read failed
Audit done.
Checkstyle ends with 2 errors.
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("plain output mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainEncoderWarning(t *testing.T) {
	var buf bytes.Buffer
	enc := NewPlainEncoder(&buf, config.SeverityWarning, false)
	if err := enc.Encode(sampleResults()[:1]); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[WARN] game/Board.java:12:5:") {
		t.Errorf("expected a WARN label, got:\n%s", out)
	}
	if strings.Contains(out, "Checkstyle ends with") {
		t.Errorf("warnings should not end the audit with errors, got:\n%s", out)
	}
}

func TestPlainEncoderColor(t *testing.T) {
	var buf bytes.Buffer
	enc := NewPlainEncoder(&buf, config.SeverityError, true)
	if err := enc.Encode(sampleResults()[:1]); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := New("json", &buf, Options{Severity: config.SeverityWarning})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := enc.Encode(sampleResults()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := Report{
		Files:  3,
		Failed: 1,
		Diagnostics: []JSONDiagnostic{
			{Path: "game/Board.java", Line: 12, Column: 5, Kind: "MissingJavadoc", Severity: "warning", Message: "Missing a Javadoc comment.", Check: check.Name},
			{Path: "game/Board.java", Line: 20, Column: 16, Kind: "ExpectedReturnTag", Severity: "warning", Message: "Expected an @return tag.", Check: check.Name},
		},
		Errors: []JSONError{{Path: "game/Broken.java", Error: "read failed"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON report mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEncoderEmptyDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf, config.SeverityError).Encode(nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"diagnostics": []`) {
		t.Errorf("expected an empty diagnostics array, got:\n%s", buf.String())
	}
}

func TestXMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := New("xml", &buf, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := enc.Encode(sampleResults()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Errorf("expected an XML header, got:\n%s", buf.String())
	}

	var got xmlReport
	if err := xml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not XML: %v", err)
	}
	if len(got.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(got.Files))
	}
	board := got.Files[0]
	if board.Name != "game/Board.java" || len(board.Errors) != 2 {
		t.Fatalf("unexpected file entry %+v", board)
	}
	first := board.Errors[0]
	if first.Line != 12 || first.Column != 5 || first.Severity != "error" {
		t.Errorf("unexpected error entry %+v", first)
	}
	if first.Source != "style61b.JavadocMethod61b.MissingJavadoc" {
		t.Errorf("unexpected source %q", first.Source)
	}
	if len(got.Files[2].Errors) != 0 {
		t.Errorf("clean file should have no errors, got %+v", got.Files[2].Errors)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("html", &bytes.Buffer{}, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if useColor(&buf, ColorAuto) {
		t.Error("a buffer is never a terminal")
	}
	if !useColor(&buf, ColorAlways) {
		t.Error("always should force colour")
	}
	if useColor(&buf, ColorNever) {
		t.Error("never should disable colour")
	}
}
