// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizer defines the entity-recognizer boundary. The
// decision engine only consumes spans. Whether they come from a trained
// model, a heuristic, or nothing at all is decided at composition time,
// not via runtime fallback.
package recognizer

import "github.com/gmcaixeta/PrivacyAware/internal/detector"

// Recognizer proposes person-name candidate spans for a text. Per the
// engine contract, implementations must only emit PERSON spans with at
// least two whitespace-separated tokens; single given names are never
// PERSON candidates.
type Recognizer interface {
	Recognize(text string) []detector.Span
}

// Null is a Recognizer that proposes nothing. With it the engine still
// flags structured identifiers, the behavior of a deployment without a
// trained model.
type Null struct{}

// Recognize returns no spans.
func (Null) Recognize(string) []detector.Span { return nil }
