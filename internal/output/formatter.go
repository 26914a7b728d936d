// Package output renders transform results for the one-shot commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	apperrors "github.com/cipherium-go/internal/errors"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Result is the outcome of one transform invocation.
type Result struct {
	Operation string `json:"operation" yaml:"operation"`
	Output    string `json:"output,omitempty" yaml:"output,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// NewResult builds a Result from a transform's return values.
func NewResult(op, out string, err error) Result {
	r := Result{Operation: op, Output: out}
	if err != nil {
		r.Output = ""
		r.Error = err.Error()
		r.ErrorKind = string(apperrors.KindOf(err))
	}
	return r
}

// Formatter formats results for output.
type Formatter interface {
	Format(w io.Writer, r Result) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter prints the bare output, or "Error: ..." on failure.
type TextFormatter struct{}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, r Result) error {
	if r.Error != "" {
		_, err := fmt.Fprintf(w, "Error: %s\n", r.Error)
		return err
	}
	_, err := fmt.Fprintln(w, r.Output)
	return err
}

// JSONFormatter prints one JSON object per result.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// YAMLFormatter prints one YAML document per result.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, r Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
