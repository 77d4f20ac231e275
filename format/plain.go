package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java/codebase"
)

// PlainEncoder writes results the way the checkstyle command line
// reports an audit.
type PlainEncoder struct {
	w        io.Writer
	severity config.Severity
	results  []codebase.Result

	label   *color.Color
	path    *color.Color
	checkID *color.Color
}

func NewPlainEncoder(w io.Writer, severity config.Severity, colored bool) *PlainEncoder {
	e := &PlainEncoder{
		w:        w,
		severity: severity,
		label:    color.New(severityColor(severity), color.Bold),
		path:     color.New(color.Bold),
		checkID:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{e.label, e.path, e.checkID} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *PlainEncoder) Encode(results []codebase.Result) error {
	e.results = results
	return write(e.w, e)
}

func (e *PlainEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("Starting audit...\n")
	for _, r := range e.results {
		if r.Err != nil {
			fmt.Fprintf(&sb, "%s %s: %s\n", e.label.Sprint("[ERROR]"), e.path.Sprint(r.Path), r.Err)
			continue
		}
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&sb, "%s %s:%d:%d: %s %s\n",
				e.label.Sprintf("[%s]", severityLabel(e.severity)),
				e.path.Sprint(r.Path),
				d.Line,
				d.Column,
				d.Message(),
				e.checkID.Sprintf("[%s]", check.Name),
			)
		}
	}
	sb.WriteString("Audit done.\n")
	if diagnostics, _ := codebase.Count(e.results); diagnostics > 0 && e.severity == config.SeverityError {
		fmt.Fprintf(&sb, "Checkstyle ends with %d errors.\n", diagnostics)
	}
	return []byte(sb.String()), nil
}

func severityLabel(s config.Severity) string {
	switch s {
	case config.SeverityWarning:
		return "WARN"
	case config.SeverityInfo:
		return "INFO"
	}
	return "ERROR"
}

func severityColor(s config.Severity) color.Attribute {
	switch s {
	case config.SeverityWarning:
		return color.FgYellow
	case config.SeverityInfo:
		return color.FgCyan
	}
	return color.FgRed
}
