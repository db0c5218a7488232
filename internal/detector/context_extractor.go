// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// ContextExtractor slices a normalized window of text around a span.
// Two radius configurations are used system-wide: a narrow window for
// exclusion checks, where the cue must sit right next to the name
// ("Rua {Name}"), and a wide window for role and associated-data
// checks, where the cue may be a full clause away.
type ContextExtractor struct {
	// Number of characters before and after the span to consider
	Before int
	After  int
}

// NewContextExtractor creates a context extractor with the given radius
// on both sides.
func NewContextExtractor(radius int) *ContextExtractor {
	return &ContextExtractor{Before: radius, After: radius}
}

// Window returns the lowercased substring of radius characters around
// [start, end). Radius overrun is an expected boundary condition, not a
// caller bug, so offsets are clamped instead of failing.
func (ce *ContextExtractor) Window(text string, start, end int) string {
	from := start - ce.Before
	if from < 0 {
		from = 0
	}
	to := end + ce.After
	if to > len(text) {
		to = len(text)
	}
	if from >= to {
		return ""
	}
	return strings.ToLower(text[from:to])
}
