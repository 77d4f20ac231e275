package codebase

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
)

func TestToProtocolDiagnostics(t *testing.T) {
	result := Result{
		Path: "Board.java",
		Diagnostics: []check.Diagnostic{
			{Kind: check.ExpectedParamTag, Line: 3, Column: 10, Args: []string{"x"}},
		},
	}

	got := toProtocolDiagnostics(result, protocolSeverity(config.SeverityWarning))
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	d := got[0]
	if d.Range.Start.Line != 2 || d.Range.Start.Character != 9 || d.Range.End.Character != 10 {
		t.Errorf("unexpected range %+v", d.Range)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("expected warning severity, got %v", d.Severity)
	}
	if d.Message != "Expected @param tag for 'x'." {
		t.Errorf("unexpected message %q", d.Message)
	}
	if d.Code == nil || d.Code.Value != string(check.ExpectedParamTag) {
		t.Errorf("expected the kind as code, got %+v", d.Code)
	}
}

func TestToProtocolDiagnosticsEmpty(t *testing.T) {
	got := toProtocolDiagnostics(Result{}, protocol.DiagnosticSeverityError)
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non-nil slice so clients clear old diagnostics, got %#v", got)
	}
}

func TestURIToPath(t *testing.T) {
	tests := map[string]string{
		"file:///home/me/Board.java":       "/home/me/Board.java",
		"file:///home/me/My%20Game/A.java": "/home/me/My Game/A.java",
		"Board.java":                       "Board.java",
	}
	for uri, want := range tests {
		got, err := uriToPath(uri)
		if err != nil || got != want {
			t.Errorf("uriToPath(%q) = %q, %v; want %q", uri, got, err, want)
		}
	}
}
