// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

var (
	// Letter runs, accents included.
	wordToken = regexp.MustCompile(`[\p{L}ª]+`)

	// Honorific titles stripped from the front of a candidate.
	titles = map[string]bool{
		"dr": true, "dra": true, "prof": true, "profª": true, "eng": true,
		"sr": true, "sra": true,
	}

	// Lowercase connectives allowed inside a full name
	// ("João da Silva", "Maria dos Santos").
	connectives = map[string]bool{
		"da": true, "das": true, "de": true, "do": true, "dos": true, "e": true,
	}
)

// Heuristic is a dictionary-assisted pattern recognizer: sequences of
// two or more capitalized words, optionally joined by connectives,
// where at least one token is a known Brazilian given name or surname.
// It stands in for a trained model and intentionally over-proposes;
// the semantic classifiers decide what is actually personal data.
type Heuristic struct {
	firstNames map[string]bool
	lastNames  map[string]bool
}

// NewHeuristic builds a Heuristic over the built-in name dictionaries.
func NewHeuristic() *Heuristic {
	return &Heuristic{firstNames: firstNames, lastNames: lastNames}
}

// Recognize proposes PERSON spans. Candidates with fewer than two
// name tokens are dropped, honoring the recognizer contract.
func (h *Heuristic) Recognize(text string) []detector.Span {
	var spans []detector.Span

	words := tokenize(text)
	for i := 0; i < len(words); {
		if !isCapitalized(words[i].text) || isTitle(words[i].text) {
			i++
			continue
		}

		// Grow a run of capitalized words, skipping connectives that
		// are followed by another capitalized word. Tokens of one name
		// are separated by spaces only; punctuation ends the run, so a
		// capitalized field label ("Requerente: Maria") never joins the
		// name after it.
		j := i + 1
		for j < len(words) {
			if !spaceSeparated(text, words[j-1], words[j]) {
				break
			}
			if isCapitalized(words[j].text) {
				j++
				continue
			}
			if connectives[strings.ToLower(words[j].text)] &&
				j+1 < len(words) && isCapitalized(words[j+1].text) &&
				spaceSeparated(text, words[j], words[j+1]) {
				j += 2
				continue
			}
			break
		}

		nameTokens := j - i
		if nameTokens >= 2 && h.looksLikeName(words[i:j]) {
			start, end := words[i].start, words[j-1].end
			spans = append(spans, detector.Span{
				Start:     start,
				End:       end,
				Text:      text[start:end],
				Label:     detector.LabelPerson,
				Extractor: "heuristic",
			})
		}
		i = j
	}
	return spans
}

// looksLikeName requires at least one token from the name dictionaries,
// filtering capitalized non-name phrases ("Processo Administrativo").
func (h *Heuristic) looksLikeName(tokens []word) bool {
	for _, t := range tokens {
		lower := strings.ToLower(t.text)
		if h.firstNames[lower] || h.lastNames[lower] {
			return true
		}
	}
	return false
}

type word struct {
	text       string
	start, end int
}

// spaceSeparated reports whether only space characters sit between two
// consecutive tokens.
func spaceSeparated(text string, a, b word) bool {
	for _, r := range text[a.end:b.start] {
		if r != ' ' {
			return false
		}
	}
	return true
}

func tokenize(text string) []word {
	var words []word
	for _, loc := range wordToken.FindAllStringIndex(text, -1) {
		words = append(words, word{text: text[loc[0]:loc[1]], start: loc[0], end: loc[1]})
	}
	return words
}

// isCapitalized rejects mixed-case and ALL-CAPS tokens: only an initial
// uppercase rune followed by lowercase runes qualifies. All-caps tokens
// usually spell company names, not people.
func isCapitalized(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func isTitle(s string) bool {
	return titles[strings.ToLower(strings.TrimSuffix(s, "."))]
}
