// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
	"github.com/gmcaixeta/PrivacyAware/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No texts classified.", nil
	}

	var sb strings.Builder
	personal := 0
	for i, res := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		f.writeResult(&sb, res, options)
		if res.Document.HasPersonalData() {
			personal++
		}
	}

	if len(results) > 1 {
		sb.WriteString("\n")
		sb.WriteString(f.colors["white"].Sprintf("Summary: %d of %d texts carry personal data\n", personal, len(results)))
	}
	return sb.String(), nil
}

func (f *Formatter) writeResult(sb *strings.Builder, res formatters.Result, options formatters.FormatterOptions) {
	doc := res.Document

	intentColor := f.colors["green"]
	if doc.HasPersonalData() {
		intentColor = f.colors["red"]
	}

	fmt.Fprintf(sb, "%s: %s (confidence %.2f)\n",
		f.colors["cyan"].Sprint(res.Source),
		intentColor.Sprint(doc.Intent),
		doc.Confidence)

	if !options.Verbose {
		return
	}

	for _, e := range doc.Entities {
		fmt.Fprintf(sb, "  %s %q [%d:%d] %s\n",
			f.colors["white"].Sprint(string(e.Span.Label)),
			e.Span.Text, e.Span.Start, e.Span.End,
			f.describeVerdict(e.Verdict))
	}
	for _, e := range doc.Excluded {
		fmt.Fprintf(sb, "  %s %q %s\n",
			f.colors["yellow"].Sprint("EXCLUDED"),
			e.Span.Text,
			f.describeVerdict(e.Verdict))
	}
}

func (f *Formatter) describeVerdict(v detector.Verdict) string {
	parts := []string{string(v.Reason)}
	if v.Subtype != "" {
		parts = append(parts, v.Subtype)
	}
	if v.Evidence != "" {
		parts = append(parts, fmt.Sprintf("evidence=%q", v.Evidence))
	}
	return strings.Join(parts, " / ")
}

func init() {
	formatters.Register(NewFormatter())
}
