package format

import (
	"encoding/xml"
	"io"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java/codebase"
)

const checkstyleVersion = "10.12.0"

// XMLEncoder writes a checkstyle XML report, which CI systems and
// editors already know how to read.
type XMLEncoder struct {
	w        io.Writer
	severity config.Severity
	results  []codebase.Result
}

func NewXMLEncoder(w io.Writer, severity config.Severity) *XMLEncoder {
	return &XMLEncoder{w: w, severity: severity}
}

func (e *XMLEncoder) Encode(results []codebase.Result) error {
	e.results = results
	return write(e.w, e)
}

type xmlReport struct {
	XMLName xml.Name  `xml:"checkstyle"`
	Version string    `xml:"version,attr"`
	Files   []xmlFile `xml:"file"`
}

type xmlFile struct {
	Name   string     `xml:"name,attr"`
	Errors []xmlError `xml:"error"`
}

type xmlError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr,omitempty"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

func (e *XMLEncoder) MarshalText() ([]byte, error) {
	report := xmlReport{Version: checkstyleVersion}
	for _, r := range e.results {
		file := xmlFile{Name: r.Path}
		if r.Err != nil {
			file.Errors = append(file.Errors, xmlError{
				Severity: string(config.SeverityError),
				Message:  r.Err.Error(),
				Source:   "style61b",
			})
		}
		for _, d := range r.Diagnostics {
			file.Errors = append(file.Errors, xmlError{
				Line:     d.Line,
				Column:   d.Column,
				Severity: string(e.severity),
				Message:  d.Message(),
				Source:   "style61b." + check.Name + "." + string(d.Kind),
			})
		}
		report.Files = append(report.Files, file)
	}

	data, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	out := []byte(xml.Header)
	out = append(out, data...)
	return append(out, '\n'), nil
}
