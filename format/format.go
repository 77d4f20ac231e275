// Package format renders check results as a checkstyle audit log, JSON
// or a checkstyle XML report.
package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java/codebase"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the names accepted by New.
var Formats = []string{"plain", "json", "xml"}

type Encoder interface {
	encoding.TextMarshaler
	Encode(results []codebase.Result) error
}

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Options struct {
	Severity config.Severity
	Color    ColorMode
}

func New(name string, w io.Writer, opts Options) (Encoder, error) {
	severity := opts.Severity
	if severity == "" {
		severity = config.SeverityError
	}
	switch strings.ToLower(name) {
	case "", "plain":
		return NewPlainEncoder(w, severity, useColor(w, opts.Color)), nil
	case "json":
		return NewJSONEncoder(w, severity), nil
	case "xml", "checkstyle":
		return NewXMLEncoder(w, severity), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
