// SPDX-License-Identifier: MIT

// Package report renders the outcome of a CSV read for the gridcsv command.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Encode and ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Report summarizes one decoded array.
type Report struct {
	Source  string `json:"source" yaml:"source"`
	Element string `json:"element" yaml:"element"`
	Mode    string `json:"mode" yaml:"mode"`
	Rows    int    `json:"rows" yaml:"rows"`
	Cols    int    `json:"cols" yaml:"cols"`
	Cells   int    `json:"cells" yaml:"cells"`
	// Values holds the formatted cells row by row; empty unless requested.
	Values [][]string `json:"values,omitempty" yaml:"values,omitempty"`
}

// ParseFormat normalizes a format name.
func ParseFormat(name string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(name))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, format string, r Report) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	return encodeText(w, r)
}

func encodeText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "source:  %s\n", r.Source)
	fmt.Fprintf(&b, "element: %s\n", r.Element)
	fmt.Fprintf(&b, "mode:    %s\n", r.Mode)
	fmt.Fprintf(&b, "shape:   %dx%d (%d cells)\n", r.Rows, r.Cols, r.Cells)
	for _, row := range r.Values {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
