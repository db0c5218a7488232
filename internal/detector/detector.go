// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"errors"
	"fmt"
)

// Label identifies the kind of entity a span refers to.
type Label string

const (
	LabelPerson   Label = "PERSON"
	LabelDocument Label = "DOCUMENT"
	LabelEmail    Label = "EMAIL"
	LabelPhone    Label = "PHONE"
)

// Span is a candidate entity inside a source text. Offsets are byte
// positions with Start < End <= len(text). Spans are immutable once
// created; classification never rewrites them.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"value"`
	Label Label  `json:"entity"`

	// Type carries the concrete identifier class for structured spans
	// (cpf, rg, cnpj, passaporte, email, telefone). Empty for PERSON.
	Type string `json:"type,omitempty"`

	// Extractor names the component that produced the span
	// ("pattern", "extenso", or a recognizer name).
	Extractor string `json:"extractor,omitempty"`
}

// Reason explains a classification verdict.
type Reason string

const (
	// ReasonExclusion marks a name used as a public denomination
	// (institution, toponym, law, homage) rather than a natural person.
	ReasonExclusion Reason = "contexto_exclusao"

	// ReasonIndividualizingRole marks a name tied to an act performed by,
	// or a status held by, an individual.
	ReasonIndividualizingRole Reason = "papel_individualizante"

	// ReasonAssociatedData marks a name co-located with document numbers
	// or contact data.
	ReasonAssociatedData Reason = "dados_associados"

	// ReasonNoRole is the default for a bare name with no individualizing
	// context: public data.
	ReasonNoRole Reason = "sem_papel_individualizante"

	// ReasonDocumentOrContact applies unconditionally to structured
	// identifier spans.
	ReasonDocumentOrContact Reason = "documento_ou_contato"
)

// Subtypes for ReasonIndividualizingRole, in classifier precedence order.
const (
	SubtypeVerb      = "verbo_individual"
	SubtypeRoleNoun  = "papel_nominal"
	SubtypeIDContext = "contexto_identificacao"
)

// Motives for ReasonExclusion.
const (
	MotiveInstitutional = "denominacao_institucional"
	MotiveLawHomage     = "lei_homenagem"
	MotiveHomage        = "homenagem"
	MotiveNamedReport   = "relatorio_nomeado"
)

// Verdict is the per-span classification outcome.
type Verdict struct {
	IsPersonalData bool   `json:"is_personal_data"`
	Reason         Reason `json:"reason"`

	// Subtype refines the reason: a role subtype for
	// papel_individualizante, an exclusion motive for contexto_exclusao.
	Subtype string `json:"subtype,omitempty"`

	// Evidence is the lexicon phrase or pattern that triggered the
	// decision. Informational only: when several phrases match the same
	// window, the longest one is reported.
	Evidence string `json:"evidence,omitempty"`
}

// ErrInvalidSpan reports a malformed span (start >= end, or offsets
// outside the source text). Callers must not pass such spans through.
var ErrInvalidSpan = errors.New("invalid span")

// ValidateSpan checks span offsets against the source text.
func ValidateSpan(text string, span Span) error {
	if span.Start < 0 || span.End <= span.Start || span.End > len(text) {
		return fmt.Errorf("%w: [%d:%d) in text of length %d", ErrInvalidSpan, span.Start, span.End, len(text))
	}
	return nil
}
