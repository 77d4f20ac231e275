package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java/codebase"
)

type JSONEncoder struct {
	w        io.Writer
	severity config.Severity
	results  []codebase.Result
}

func NewJSONEncoder(w io.Writer, severity config.Severity) *JSONEncoder {
	return &JSONEncoder{w: w, severity: severity}
}

func (e *JSONEncoder) Encode(results []codebase.Result) error {
	e.results = results
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(BuildReport(e.results, e.severity), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Report is the JSON form of a run. It is also what the MCP tool returns.
type Report struct {
	Files       int              `json:"files"`
	Failed      int              `json:"failed"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Errors      []JSONError      `json:"errors,omitempty"`
}

type JSONDiagnostic struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
}

type JSONError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func BuildReport(results []codebase.Result, severity config.Severity) Report {
	report := Report{
		Files:       len(results),
		Diagnostics: []JSONDiagnostic{},
	}
	for _, r := range results {
		if r.Err != nil {
			report.Failed++
			report.Errors = append(report.Errors, JSONError{Path: r.Path, Error: r.Err.Error()})
			continue
		}
		for _, d := range r.Diagnostics {
			report.Diagnostics = append(report.Diagnostics, JSONDiagnostic{
				Path:     r.Path,
				Line:     d.Line,
				Column:   d.Column,
				Kind:     string(d.Kind),
				Severity: string(severity),
				Message:  d.Message(),
				Check:    check.Name,
			})
		}
	}
	return report
}
