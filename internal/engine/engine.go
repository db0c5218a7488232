// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine composes the extractor, recognizer and the three
// classifiers into the full per-span and per-document decision
// procedure for information request texts.
package engine

import (
	"fmt"
	"sort"

	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/associated"
	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/exclusion"
	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/role"
	"github.com/gmcaixeta/PrivacyAware/internal/detector"
	"github.com/gmcaixeta/PrivacyAware/internal/extractor"
	"github.com/gmcaixeta/PrivacyAware/internal/lexicon"
	"github.com/gmcaixeta/PrivacyAware/internal/observability"
	"github.com/gmcaixeta/PrivacyAware/internal/recognizer"
)

// Document intents. A document carries personal data as soon as any
// single span does.
const (
	IntentPersonalData = "has_personal_data"
	IntentPublic       = "public"
)

// Confidence values reported per intent. The positive intent is the
// more conservative call and carries the higher confidence.
const (
	ConfidencePersonalData = 0.90
	ConfidencePublic       = 0.85
)

// EntityResult pairs a span with its verdict.
type EntityResult struct {
	Span    detector.Span    `json:"span"`
	Verdict detector.Verdict `json:"verdict"`
}

// DocumentResult is the aggregated outcome for one text.
type DocumentResult struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Entities   []EntityResult `json:"entities"`

	// Excluded lists PERSON spans vetoed by exclusion context. They are
	// kept out of Entities so downstream consumers see only decisions
	// about actual candidates.
	Excluded []EntityResult `json:"excluded,omitempty"`
}

// HasPersonalData reports whether the aggregated intent is positive.
func (r DocumentResult) HasPersonalData() bool {
	return r.Intent == IntentPersonalData
}

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	ExclusionRadius  int
	RoleRadius       int
	AssociatedRadius int

	ConfidencePersonalData float64
	ConfidencePublic       float64
}

// Engine classifies candidate spans against their surrounding context.
// Safe for concurrent use: all state is read-only after New.
type Engine struct {
	lexicons   *lexicon.Store
	exclusion  *exclusion.Classifier
	role       *role.Classifier
	associated *associated.Classifier
	extractor  *extractor.Extractor
	recognizer recognizer.Recognizer
	observer   *observability.Observer

	confPersonal float64
	confPublic   float64
}

// New builds an engine over the given lexicon store and recognizer.
// The store is validated up front: an engine with an empty lexicon set
// would silently misclassify, so construction fails instead.
func New(store *lexicon.Store, rec recognizer.Recognizer, obs *observability.Observer, opts Options) (*Engine, error) {
	if store == nil {
		store = lexicon.Default()
	}
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if rec == nil {
		rec = recognizer.Null{}
	}
	if opts.ConfidencePersonalData == 0 {
		opts.ConfidencePersonalData = ConfidencePersonalData
	}
	if opts.ConfidencePublic == 0 {
		opts.ConfidencePublic = ConfidencePublic
	}
	return &Engine{
		lexicons:   store,
		exclusion:  exclusion.New(store, opts.ExclusionRadius),
		role:       role.New(store, opts.RoleRadius),
		associated: associated.New(opts.AssociatedRadius),
		extractor:  extractor.New(),
		recognizer: rec,
		observer:   obs,

		confPersonal: opts.ConfidencePersonalData,
		confPublic:   opts.ConfidencePublic,
	}, nil
}

// DecideSpan runs the layered decision procedure for one span.
//
// Structured identifiers (anything that is not a PERSON span) are
// personal data unconditionally. PERSON spans go through exclusion
// veto, then individualizing role, then associated data, and default
// to not-personal when nothing individualizes the name.
func (e *Engine) DecideSpan(text string, span detector.Span) (detector.Verdict, error) {
	if err := detector.ValidateSpan(text, span); err != nil {
		return detector.Verdict{}, err
	}
	if span.Label != detector.LabelPerson {
		return detector.Verdict{
			IsPersonalData: true,
			Reason:         detector.ReasonDocumentOrContact,
			Evidence:       span.Type,
		}, nil
	}
	if res := e.exclusion.Check(text, span); res.Exclude {
		return detector.Verdict{
			IsPersonalData: false,
			Reason:         detector.ReasonExclusion,
			Subtype:        res.Motive,
			Evidence:       res.Trigger,
		}, nil
	}
	if res := e.role.Check(text, span); res.Found {
		return detector.Verdict{
			IsPersonalData: true,
			Reason:         detector.ReasonIndividualizingRole,
			Subtype:        res.Subtype,
			Evidence:       res.Evidence,
		}, nil
	}
	if e.associated.Check(text, span) {
		return detector.Verdict{
			IsPersonalData: true,
			Reason:         detector.ReasonAssociatedData,
		}, nil
	}
	return detector.Verdict{
		IsPersonalData: false,
		Reason:         detector.ReasonNoRole,
	}, nil
}

// Classify decides every span and aggregates the document intent.
// Spans with invalid offsets are skipped rather than failing the whole
// document. Output ordering follows span start offset.
func (e *Engine) Classify(text string, spans []detector.Span) DocumentResult {
	complete := e.observer.StartTiming("engine", "classify", "document")

	ordered := make([]detector.Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	result := DocumentResult{Intent: IntentPublic, Confidence: e.confPublic}
	for _, span := range ordered {
		verdict, err := e.DecideSpan(text, span)
		if err != nil {
			continue
		}
		entry := EntityResult{Span: span, Verdict: verdict}
		if verdict.Reason == detector.ReasonExclusion {
			result.Excluded = append(result.Excluded, entry)
			continue
		}
		result.Entities = append(result.Entities, entry)
		if verdict.IsPersonalData {
			result.Intent = IntentPersonalData
			result.Confidence = e.confPersonal
		}
	}

	complete(true, map[string]any{
		"spans":    len(spans),
		"intent":   result.Intent,
		"excluded": len(result.Excluded),
	})
	return result
}

// ClassifyText discovers spans itself (pattern extractor plus the
// configured recognizer) and classifies them.
func (e *Engine) ClassifyText(text string) DocumentResult {
	spans := e.extractor.Extract(text)
	spans = append(spans, e.recognizer.Recognize(text)...)
	return e.Classify(text, spans)
}
