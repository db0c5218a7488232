// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package role decides whether a person-name span carries an
// individualizing role: a verb of individual action ("solicitou"),
// a nominal role ("requerente"), or a form-style identification marker
// ("Nome:"). Any of the three makes the name identify a natural person.
package role

import (
	"github.com/gmcaixeta/PrivacyAware/internal/detector"
	"github.com/gmcaixeta/PrivacyAware/internal/lexicon"
)

// DefaultRadius is the wide context radius. Individualizing cues may
// appear a full clause away from the name ("Prezados, na qualidade de
// representante da X, João Silva solicita..."), so a wide window is
// used. Any match inside the window counts, not only the closest one;
// a false positive from an unrelated verb in a long window is accepted
// as a conservative bias toward over-flagging personal data.
const DefaultRadius = 100

// Result is the role check outcome.
type Result struct {
	Found bool
	// Subtype is the matching category, in precedence order:
	// verbo_individual, papel_nominal, contexto_identificacao.
	Subtype string
	// Evidence is the matched lexicon phrase.
	Evidence string
}

// Classifier tests wide windows against the three individualizing
// lexicon sets in fixed order; the first category to match wins.
type Classifier struct {
	verbs      lexicon.Set
	roles      lexicon.Set
	idContexts lexicon.Set
	windows    *detector.ContextExtractor
}

// New builds a Classifier over the store's individualizing sets with
// the given window radius (DefaultRadius when <= 0).
func New(store *lexicon.Store, radius int) *Classifier {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Classifier{
		verbs:      store.IndividualizingVerbs,
		roles:      store.IndividualizingRoles,
		idContexts: store.IdentificationContexts,
		windows:    detector.NewContextExtractor(radius),
	}
}

// Check tests the wide window around span against verbs, then role
// nouns, then identification contexts.
func (c *Classifier) Check(text string, span detector.Span) Result {
	window := c.windows.Window(text, span.Start, span.End)

	if phrase, ok := c.verbs.Match(window); ok {
		return Result{Found: true, Subtype: detector.SubtypeVerb, Evidence: phrase}
	}
	if phrase, ok := c.roles.Match(window); ok {
		return Result{Found: true, Subtype: detector.SubtypeRoleNoun, Evidence: phrase}
	}
	if phrase, ok := c.idContexts.Match(window); ok {
		return Result{Found: true, Subtype: detector.SubtypeIDContext, Evidence: phrase}
	}
	return Result{}
}
