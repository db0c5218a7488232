// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package associated decides whether a person-name span is co-located
// with other personal identifiers: a document or contact keyword, or a
// structured-identifier pattern. Proximity to such data is a strong
// indicator the name refers to a natural person.
package associated

import (
	"regexp"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

// DefaultRadius is the wide context radius for associated-data checks.
const DefaultRadius = 150

// Classifier scans wide windows for document/contact keywords and
// identifier patterns.
type Classifier struct {
	windows  *detector.ContextExtractor
	patterns []*regexp.Regexp
}

// New builds a Classifier with the given window radius (DefaultRadius
// when <= 0). Windows are lowercased before matching, so the patterns
// are written lowercase.
func New(radius int) *Classifier {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Classifier{
		windows: detector.NewContextExtractor(radius),
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bcpf\b`),
			regexp.MustCompile(`\brg\b`),
			regexp.MustCompile(`\bemail\b`),
			regexp.MustCompile(`\btelefone\b`),
			// CPF digit grouping
			regexp.MustCompile(`\d{3}\.?\d{3}\.?\d{3}-?\d{2}`),
			// RG digit grouping
			regexp.MustCompile(`\d{2}\.?\d{3}\.?\d{3}`),
			// Email literal
			regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`),
		},
	}
}

// Check reports whether the wide window around span contains a
// document or contact reference.
func (c *Classifier) Check(text string, span detector.Span) bool {
	window := c.windows.Window(text, span.Start, span.End)
	for _, p := range c.patterns {
		if p.MatchString(window) {
			return true
		}
	}
	return false
}
