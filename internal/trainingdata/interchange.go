// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package trainingdata generates labeled example corpora for the
// classifier and evaluates the engine against them.
package trainingdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Example is one labeled text. Kind records which template family
// produced it, useful when drilling into evaluation errors.
type Example struct {
	Text     string          `json:"text"`
	Intent   string          `json:"intent"`
	Kind     string          `json:"kind,omitempty"`
	Entities []ExampleEntity `json:"entities,omitempty"`
}

// ExampleEntity is a labeled span annotation inside an example text.
// Offsets are byte positions into Text.
type ExampleEntity struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Value  string `json:"value"`
	Entity string `json:"entity"`
	Role   string `json:"role,omitempty"`
}

// Dataset is the JSON interchange envelope. The layout (version,
// language, metadata, data.common_examples) matches the corpus format
// used by common NLU training pipelines.
type Dataset struct {
	Version  string            `json:"version"`
	Language string            `json:"language"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Data     struct {
		CommonExamples []Example `json:"common_examples"`
	} `json:"data"`
}

// DatasetVersion is the current interchange version.
const DatasetVersion = "2.0"

// NewDataset wraps examples in the interchange envelope.
func NewDataset(examples []Example) *Dataset {
	ds := &Dataset{
		Version:  DatasetVersion,
		Language: "pt",
		Metadata: map[string]string{
			"modelo":   "classificacao_semantica",
			"criterio": "papel_individualizante",
		},
	}
	ds.Data.CommonExamples = examples
	return ds
}

// WriteTo serializes the dataset as indented JSON.
func (ds *Dataset) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(ds)
}

// Save writes the dataset to a file.
func (ds *Dataset) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()
	return ds.WriteTo(f)
}

// Load reads a dataset from a file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	ds := &Dataset{}
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}
	return ds, nil
}
