// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lexicon holds the immutable phrase sets the classifiers test
// context windows against. Sets are built once at startup and never
// mutated afterwards, so concurrent readers need no locking.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptySet reports a lexicon set with no phrases. The engine refuses
// to classify with an empty exclusion set: that would silently turn the
// exclusion veto into a no-op and overclassify institutional names as
// personal data.
var ErrEmptySet = errors.New("lexicon set is empty")

// Set is a named collection of normalized phrases. Phrases are stored
// lowercase, with punctuation-stripped variants included ("s.a." is
// also matchable as "sa"), sorted longest-first so that when several
// entries match the same window the reported evidence is deterministic.
type Set struct {
	name    string
	phrases []string
}

// NewSet normalizes and deduplicates phrases into a Set.
func NewSet(name string, phrases []string) Set {
	seen := make(map[string]bool, len(phrases)*2)
	var normalized []string
	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		normalized = append(normalized, p)
	}
	for _, p := range phrases {
		lower := strings.ToLower(p)
		add(lower)
		add(strings.ReplaceAll(lower, ".", ""))
	}
	// Longest first; ties broken lexicographically for determinism.
	sort.Slice(normalized, func(i, j int) bool {
		if len(normalized[i]) != len(normalized[j]) {
			return len(normalized[i]) > len(normalized[j])
		}
		return normalized[i] < normalized[j]
	})
	return Set{name: name, phrases: normalized}
}

// Name returns the set's name.
func (s Set) Name() string { return s.name }

// Len returns the number of normalized phrases.
func (s Set) Len() int { return len(s.phrases) }

// Phrases returns a copy of the normalized phrases, longest first.
func (s Set) Phrases() []string {
	out := make([]string, len(s.phrases))
	copy(out, s.phrases)
	return out
}

// Match reports whether any phrase occurs in the window, returning the
// longest matching phrase as evidence. Matching is word-boundary aware:
// "rua" matches "rua maria santos" but not "arruaça", and the
// single-letter abbreviation "r" only matches a standalone token.
func (s Set) Match(window string) (string, bool) {
	for _, phrase := range s.phrases {
		if containsWord(window, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// containsWord reports whether phrase occurs in text delimited by
// non-letter characters (or the text edges) on both sides.
func containsWord(text, phrase string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
		if from >= len(text) {
			return false
		}
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r := []rune(text[:i])
	return !unicode.IsLetter(r[len(r)-1])
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r := []rune(text[i:])
	return !unicode.IsLetter(r[0])
}

// Store groups the four lexicon sets the classifiers read. It is built
// once at process start and shared read-only for the process lifetime.
// Replacing these sets via configuration is the sanctioned way to
// retune behavior without a code change.
type Store struct {
	ExclusionTerms         Set
	IndividualizingVerbs   Set
	IndividualizingRoles   Set
	IdentificationContexts Set
}

// NewStore builds a Store from raw phrase lists, normalizing each set.
func NewStore(exclusion, verbs, roles, idContexts []string) *Store {
	return &Store{
		ExclusionTerms:         NewSet("exclusion_terms", exclusion),
		IndividualizingVerbs:   NewSet("individualizing_verbs", verbs),
		IndividualizingRoles:   NewSet("individualizing_roles", roles),
		IdentificationContexts: NewSet("identification_contexts", idContexts),
	}
}

// Validate fails fast on a store that cannot classify: the exclusion
// set must be non-empty, and at least one individualizing set must
// carry phrases.
func (st *Store) Validate() error {
	if st.ExclusionTerms.Len() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySet, st.ExclusionTerms.Name())
	}
	if st.IndividualizingVerbs.Len() == 0 &&
		st.IndividualizingRoles.Len() == 0 &&
		st.IdentificationContexts.Len() == 0 {
		return fmt.Errorf("%w: no individualizing phrases", ErrEmptySet)
	}
	return nil
}
