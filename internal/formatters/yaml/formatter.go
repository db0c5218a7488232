// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/formatters"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration pipelines"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type resultDoc struct {
	Source          string      `yaml:"source"`
	Intent          string      `yaml:"intent"`
	Confidence      float64     `yaml:"confidence"`
	HasPersonalData bool        `yaml:"has_personal_data"`
	Entities        []entityDoc `yaml:"entities,omitempty"`
	Excluded        []entityDoc `yaml:"excluded,omitempty"`
}

type entityDoc struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Start    int    `yaml:"start"`
	End      int    `yaml:"end"`
	Personal bool   `yaml:"is_personal_data"`
	Reason   string `yaml:"reason"`
	Subtype  string `yaml:"subtype,omitempty"`
	Evidence string `yaml:"evidence,omitempty"`
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	docs := make([]resultDoc, 0, len(results))
	for _, res := range results {
		doc := resultDoc{
			Source:          res.Source,
			Intent:          res.Document.Intent,
			Confidence:      res.Document.Confidence,
			HasPersonalData: res.Document.HasPersonalData(),
		}
		for _, e := range res.Document.Entities {
			doc.Entities = append(doc.Entities, toEntityDoc(e))
		}
		for _, e := range res.Document.Excluded {
			doc.Excluded = append(doc.Excluded, toEntityDoc(e))
		}
		docs = append(docs, doc)
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func toEntityDoc(e engine.EntityResult) entityDoc {
	return entityDoc{
		Value:    e.Span.Text,
		Label:    string(e.Span.Label),
		Start:    e.Span.Start,
		End:      e.Span.End,
		Personal: e.Verdict.IsPersonalData,
		Reason:   string(e.Verdict.Reason),
		Subtype:  e.Verdict.Subtype,
		Evidence: e.Verdict.Evidence,
	}
}

func init() {
	formatters.Register(NewFormatter())
}
