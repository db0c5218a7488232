// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor finds self-evidently personal identifiers in raw
// text: document numbers, emails, phones, and digit sequences spelled
// out in words. It is independent of the entity recognizer and always
// active; its spans never pass through the semantic classifiers because
// a raw document number has no public-denomination use.
package extractor

import (
	"regexp"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

// pattern couples a compiled regex with the span label and identifier
// class it produces.
type pattern struct {
	re    *regexp.Regexp
	label detector.Label
	typ   string
}

// Extractor is a regex-driven scanner for structured identifiers. It is
// deterministic and total on well-formed UTF-8 text. Its spans may
// overlap with recognizer spans; both contribute independently to the
// aggregate and are intentionally not deduplicated.
type Extractor struct {
	patterns []pattern
	words    *wordExtractor
}

// New compiles the identifier patterns once.
func New() *Extractor {
	return &Extractor{
		patterns: []pattern{
			// CPF: 3-3-3-2 digit grouping with optional separators.
			{regexp.MustCompile(`\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`), detector.LabelDocument, "cpf"},
			// RG: 2-3-3-1 grouping or 9 contiguous digits.
			{regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}-?\d\b|\b\d{9}\b`), detector.LabelDocument, "rg"},
			// CNPJ base: 2-3-3-4 grouping or 12 contiguous digits.
			{regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}\b|\b\d{12}\b`), detector.LabelDocument, "cnpj"},
			// Passaporte: two letters followed by six digits.
			{regexp.MustCompile(`\b[A-Z]{2}\d{6}\b`), detector.LabelDocument, "passaporte"},
			{regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`), detector.LabelEmail, "email"},
			// Telefone: optional area code in parentheses, 8-9 digits.
			{regexp.MustCompile(`\b\(?\d{2}\)?\s?\d{4,5}[-\s]?\d{4}\b`), detector.LabelPhone, "telefone"},
		},
		words: newWordExtractor(),
	}
}

// Extract returns all structured-identifier spans in text, in pattern
// order then position order, each carrying Extractor = "pattern" (or
// "extenso" for spelled-out sequences).
func (e *Extractor) Extract(text string) []detector.Span {
	var spans []detector.Span
	for _, p := range e.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			spans = append(spans, detector.Span{
				Start:     loc[0],
				End:       loc[1],
				Text:      text[loc[0]:loc[1]],
				Label:     p.label,
				Type:      p.typ,
				Extractor: "pattern",
			})
		}
	}
	spans = append(spans, e.words.extract(text)...)
	return spans
}
