// Package tmpl provides text/template rendering for per-record CLI output.
package tmpl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// fixed formats v with prec digits after the decimal point.
func fixed(prec int, v float64) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// pad right-pads s with spaces to width.
func pad(width int, s string) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var funcs = template.FuncMap{
	"fixed": fixed,
	"pad":   pad,
	"join":  strings.Join,
	"upper": strings.ToUpper,
}

// Template is a parsed template that can be executed many times.
type Template struct {
	t *template.Template
}

// Parse compiles text. Executing against data that lacks a referenced key is
// an error.
//
// Available template functions:
//   - fixed: format a float with N decimals (e.g., fixed 1 .Width)
//   - pad: right-pad a string to a width (e.g., pad 8 .Type)
//   - join: join a string slice with a separator
//   - upper: upper-case a string
func Parse(text string) (*Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Execute renders the template with data.
func (t *Template) Execute(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Render parses and executes text in one step.
func Render(text string, data any) (string, error) {
	t, err := Parse(text)
	if err != nil {
		return "", err
	}
	return t.Execute(data)
}
