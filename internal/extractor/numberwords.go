// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"regexp"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

// numberWords is the closed vocabulary of Portuguese digit words. Both
// the accented and plain spellings of "três" are accepted.
var numberWords = map[string]string{
	"zero":   "0",
	"um":     "1",
	"uma":    "1",
	"dois":   "2",
	"duas":   "2",
	"três":   "3",
	"tres":   "3",
	"quatro": "4",
	"cinco":  "5",
	"seis":   "6",
	"sete":   "7",
	"oito":   "8",
	"nove":   "9",
	"dez":    "10",
}

const (
	// minRun is the minimum count of consecutive number words; shorter
	// runs are ordinary prose ("dois ou três dias").
	minRun = 3
	// minDigits is the minimum length of the concatenated digit string
	// for the run to count as a structured identifier.
	minDigits = 6
)

// wordExtractor detects document numbers dictated in words, a common
// evasion of the digit patterns ("um dois três quatro...").
type wordExtractor struct {
	token *regexp.Regexp
}

func newWordExtractor() *wordExtractor {
	return &wordExtractor{token: regexp.MustCompile(`[\p{L}]+`)}
}

// extract scans for runs of at least minRun consecutive number words
// whose concatenated digits reach minDigits. The identifier class is
// chosen by digit count, mirroring the digit-pattern family.
func (w *wordExtractor) extract(text string) []detector.Span {
	tokens := w.token.FindAllStringIndex(text, -1)

	var spans []detector.Span
	for i := 0; i < len(tokens); {
		digits, runEnd := "", i
		for runEnd < len(tokens) {
			word := strings.ToLower(text[tokens[runEnd][0]:tokens[runEnd][1]])
			d, ok := numberWords[word]
			if !ok {
				break
			}
			digits += d
			runEnd++
		}
		if runEnd-i >= minRun && len(digits) >= minDigits {
			spans = append(spans, detector.Span{
				Start:     tokens[i][0],
				End:       tokens[runEnd-1][1],
				Text:      text[tokens[i][0]:tokens[runEnd-1][1]],
				Label:     detector.LabelDocument,
				Type:      typeForDigitCount(len(digits)),
				Extractor: "extenso",
			})
		}
		if runEnd > i {
			i = runEnd
		} else {
			i++
		}
	}
	return spans
}

func typeForDigitCount(n int) string {
	switch n {
	case 11:
		return "cpf"
	case 9:
		return "rg"
	case 12:
		return "cnpj"
	default:
		return "documento"
	}
}
