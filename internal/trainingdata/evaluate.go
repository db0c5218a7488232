// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package trainingdata

import (
	"fmt"
	"io"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
)

// maxErrorSamples caps the misclassified examples kept for inspection.
const maxErrorSamples = 10

// ClassMetrics holds per-intent evaluation counters and derived scores.
type ClassMetrics struct {
	Total         int     `json:"total"`
	Correct       int     `json:"correct"`
	TruePositive  int     `json:"tp"`
	FalsePositive int     `json:"fp"`
	FalseNegative int     `json:"fn"`
	Precision     float64 `json:"precision"`
	Recall        float64 `json:"recall"`
	F1            float64 `json:"f1_score"`
}

// ConfusionMatrix counts predictions per true intent.
type ConfusionMatrix struct {
	PublicAsPublic     int `json:"public_as_public"`
	PublicAsPersonal   int `json:"public_as_personal"`
	PersonalAsPublic   int `json:"personal_as_public"`
	PersonalAsPersonal int `json:"personal_as_personal"`
}

// ErrorSample records one misclassified example.
type ErrorSample struct {
	Text            string `json:"text"`
	TrueIntent      string `json:"true_intent"`
	PredictedIntent string `json:"predicted_intent"`
	EntityCount     int    `json:"entities_detected"`
}

// Evaluation aggregates the outcome of running the engine over a
// labeled example set.
type Evaluation struct {
	Total     int                      `json:"total"`
	Correct   int                      `json:"correct"`
	Incorrect int                      `json:"incorrect"`
	Accuracy  float64                  `json:"accuracy"`
	ByIntent  map[string]*ClassMetrics `json:"by_intent"`
	Confusion ConfusionMatrix          `json:"confusion_matrix"`
	Errors    []ErrorSample            `json:"errors,omitempty"`

	// ReasonCounts histograms the verdict reasons seen across all
	// classified spans, useful for spotting lexicon drift.
	ReasonCounts map[string]int `json:"reason_counts,omitempty"`
}

// Evaluate runs the engine over every example and computes accuracy,
// per-intent precision/recall/F1 and the confusion matrix.
func Evaluate(eng *engine.Engine, examples []Example) *Evaluation {
	ev := &Evaluation{
		Total: len(examples),
		ByIntent: map[string]*ClassMetrics{
			engine.IntentPublic:       {},
			engine.IntentPersonalData: {},
		},
		ReasonCounts: map[string]int{},
	}

	for _, ex := range examples {
		result := eng.ClassifyText(ex.Text)
		predicted := result.Intent

		for _, e := range result.Entities {
			ev.ReasonCounts[string(e.Verdict.Reason)]++
		}
		for _, e := range result.Excluded {
			ev.ReasonCounts[string(e.Verdict.Reason)]++
		}

		// Datasets loaded from disk may label with unexpected intents.
		if ev.ByIntent[ex.Intent] == nil {
			ev.ByIntent[ex.Intent] = &ClassMetrics{}
		}

		ev.ByIntent[ex.Intent].Total++
		if predicted == ex.Intent {
			ev.Correct++
			ev.ByIntent[ex.Intent].Correct++
			ev.ByIntent[ex.Intent].TruePositive++
		} else {
			ev.Incorrect++
			ev.ByIntent[ex.Intent].FalseNegative++
			ev.ByIntent[predicted].FalsePositive++
			if len(ev.Errors) < maxErrorSamples {
				ev.Errors = append(ev.Errors, ErrorSample{
					Text:            ex.Text,
					TrueIntent:      ex.Intent,
					PredictedIntent: predicted,
					EntityCount:     len(result.Entities),
				})
			}
		}

		switch {
		case ex.Intent == engine.IntentPublic && predicted == engine.IntentPublic:
			ev.Confusion.PublicAsPublic++
		case ex.Intent == engine.IntentPublic && predicted == engine.IntentPersonalData:
			ev.Confusion.PublicAsPersonal++
		case ex.Intent == engine.IntentPersonalData && predicted == engine.IntentPublic:
			ev.Confusion.PersonalAsPublic++
		default:
			ev.Confusion.PersonalAsPersonal++
		}
	}

	if ev.Total > 0 {
		ev.Accuracy = float64(ev.Correct) / float64(ev.Total)
	}
	for _, m := range ev.ByIntent {
		m.Precision = ratio(m.TruePositive, m.TruePositive+m.FalsePositive)
		m.Recall = ratio(m.TruePositive, m.TruePositive+m.FalseNegative)
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
	}
	return ev
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// WriteReport prints a human-readable evaluation summary.
func (ev *Evaluation) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Accuracy: %.2f%% (%d/%d)\n", ev.Accuracy*100, ev.Correct, ev.Total)
	fmt.Fprintln(w)

	for _, intent := range []string{engine.IntentPublic, engine.IntentPersonalData} {
		m := ev.ByIntent[intent]
		fmt.Fprintf(w, "%s:\n", intent)
		fmt.Fprintf(w, "  examples:  %d\n", m.Total)
		fmt.Fprintf(w, "  precision: %.2f%%\n", m.Precision*100)
		fmt.Fprintf(w, "  recall:    %.2f%%\n", m.Recall*100)
		fmt.Fprintf(w, "  f1-score:  %.2f%%\n", m.F1*100)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Confusion matrix (rows: true, cols: predicted):")
	fmt.Fprintf(w, "                 public  personal\n")
	fmt.Fprintf(w, "  public       %6d  %8d\n", ev.Confusion.PublicAsPublic, ev.Confusion.PublicAsPersonal)
	fmt.Fprintf(w, "  personal     %6d  %8d\n", ev.Confusion.PersonalAsPublic, ev.Confusion.PersonalAsPersonal)

	if len(ev.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Misclassified samples (first %d):\n", len(ev.Errors))
		for i, e := range ev.Errors {
			text := e.Text
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			fmt.Fprintf(w, "  %d. %q\n", i+1, text)
			fmt.Fprintf(w, "     true=%s predicted=%s entities=%d\n", e.TrueIntent, e.PredictedIntent, e.EntityCount)
		}
	}
}
