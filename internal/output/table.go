package output

import (
	"encoding/json"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Operation describes one registered transform for listing.
type Operation struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Shift       bool   `json:"shift" yaml:"shift"`
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// Table is a simple column-aligned table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table with two-space column padding.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.Headers) > 0 {
		if _, err := io.WriteString(tw, strings.Join(t.Headers, "\t")+"\n"); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := io.WriteString(tw, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteOperations renders ops in the given format.
func WriteOperations(w io.Writer, format Format, ops []Operation) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ops); err != nil {
			return err
		}
		return enc.Close()
	}

	t := &Table{}
	t.SetHeaders("OPERATION", "KIND", "SHIFT", "KEY", "DESCRIPTION")
	for _, op := range ops {
		shift := "-"
		if op.Shift {
			shift = "yes"
		}
		key := op.Key
		if key == "" {
			key = "-"
		}
		t.AddRow(op.Name, op.Kind, shift, key, op.Description)
	}
	return t.Render(w)
}
