// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	headers := []string{"source", "intent", "confidence", "entity_count", "has_personal_data"}
	if options.Verbose {
		headers = append(headers, "entities")
	}
	if err := w.Write(headers); err != nil {
		return "", err
	}

	for _, res := range results {
		doc := res.Document
		row := []string{
			res.Source,
			doc.Intent,
			strconv.FormatFloat(doc.Confidence, 'f', 2, 64),
			strconv.Itoa(len(doc.Entities)),
			strconv.FormatBool(doc.HasPersonalData()),
		}
		if options.Verbose {
			row = append(row, f.entitySummary(res))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// entitySummary flattens entities to "value (reason); ..." for the
// optional verbose column.
func (f *Formatter) entitySummary(res formatters.Result) string {
	parts := make([]string, 0, len(res.Document.Entities))
	for _, e := range res.Document.Entities {
		parts = append(parts, e.Span.Text+" ("+string(e.Verdict.Reason)+")")
	}
	return strings.Join(parts, "; ")
}

func init() {
	formatters.Register(NewFormatter())
}
