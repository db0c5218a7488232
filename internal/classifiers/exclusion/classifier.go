// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package exclusion decides whether a person-name span sits inside an
// institutional, toponymic, or honorific denomination ("Hospital Dr.
// João Silva", "Rua Maria Santos", "Lei Carlos Alberto"). Exclusion is
// a hard veto in the decision order: a name naming a place or thing is
// never personal data, whatever else surrounds it.
package exclusion

import (
	"regexp"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
	"github.com/gmcaixeta/PrivacyAware/internal/lexicon"
)

// DefaultRadius is the narrow context radius. Exclusion cues denote a
// local grammatical relation ("Rua {Name}") and must sit right next to
// the name to count; precision is preferred over recall here because a
// false exclusion silently treats personal data as public.
const DefaultRadius = 30

// Result is the exclusion check outcome.
type Result struct {
	Exclude bool
	// Motive is the exclusion reason tag.
	Motive string
	// Trigger is the matched lexicon phrase or pattern name.
	Trigger string
}

// structural patterns tested before the term lexicon, against the
// lowercased window: a normative-act, homage, or named-report keyword
// followed by name-like words.
type structuralPattern struct {
	re     *regexp.Regexp
	motive string
}

// Classifier tests narrow windows against the exclusion lexicon and the
// structural co-occurrence patterns.
type Classifier struct {
	terms    lexicon.Set
	windows  *detector.ContextExtractor
	patterns []structuralPattern
}

// New builds a Classifier over the store's exclusion terms with the
// given window radius (DefaultRadius when <= 0).
func New(store *lexicon.Store, radius int) *Classifier {
	if radius <= 0 {
		radius = DefaultRadius
	}
	const word = `[a-záàâãéèêíïóôõöúçñ]+`
	return &Classifier{
		terms:   store.ExclusionTerms,
		windows: detector.NewContextExtractor(radius),
		patterns: []structuralPattern{
			{regexp.MustCompile(`\blei\s+` + word + `\s+` + word), detector.MotiveLawHomage},
			{regexp.MustCompile(`\b(?:prêmio|premio|projeto|programa)\s+` + word), detector.MotiveHomage},
			{regexp.MustCompile(`\b(?:relatório|relatorio)\s+` + word), detector.MotiveNamedReport},
		},
	}
}

// Check tests the narrow window around span. Structural patterns are
// tested first so that "Lei <Name>" reports its specific motive rather
// than the generic institutional one; within the lexicon the longest
// matching phrase is reported as the trigger.
func (c *Classifier) Check(text string, span detector.Span) Result {
	window := c.windows.Window(text, span.Start, span.End)

	for _, p := range c.patterns {
		if m := p.re.FindString(window); m != "" {
			return Result{Exclude: true, Motive: p.motive, Trigger: m}
		}
	}

	if phrase, ok := c.terms.Match(window); ok {
		return Result{Exclude: true, Motive: detector.MotiveInstitutional, Trigger: phrase}
	}

	return Result{}
}
