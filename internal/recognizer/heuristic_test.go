// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

func spanTexts(spans []detector.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func TestRecognize_FullNames(t *testing.T) {
	h := NewHeuristic()
	cases := []struct {
		name string
		text string
		want string
	}{
		{"two tokens", "Requerente: Maria Silva pediu acesso", "Maria Silva"},
		{"three tokens", "documento de João Pedro Santos anexado", "João Pedro Santos"},
		{"connective", "assinado por Ana dos Santos ontem", "Ana dos Santos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spans := h.Recognize(tc.text)
			if len(spans) != 1 {
				t.Fatalf("expected one span, got %v", spanTexts(spans))
			}
			if spans[0].Text != tc.want {
				t.Errorf("expected %q, got %q", tc.want, spans[0].Text)
			}
			if spans[0].Label != detector.LabelPerson {
				t.Errorf("expected PERSON label, got %s", spans[0].Label)
			}
			if tc.text[spans[0].Start:spans[0].End] != spans[0].Text {
				t.Error("span offsets do not match text")
			}
		})
	}
}

func TestRecognize_TitleStripped(t *testing.T) {
	h := NewHeuristic()
	spans := h.Recognize("consulta com Dra. Maria Silva amanhã")
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %v", spanTexts(spans))
	}
	if spans[0].Text != "Maria Silva" {
		t.Errorf("title should not be part of the span, got %q", spans[0].Text)
	}
}

func TestRecognize_SingleTokenRejected(t *testing.T) {
	h := NewHeuristic()
	spans := h.Recognize("encaminhado para Maria no setor")
	if len(spans) != 0 {
		t.Errorf("single name token must be rejected, got %v", spanTexts(spans))
	}
}

func TestRecognize_NonNamePhrasesRejected(t *testing.T) {
	h := NewHeuristic()
	cases := []string{
		"o Processo Administrativo foi arquivado",
		"consulte o Portal Transparência",
	}
	for _, text := range cases {
		if spans := h.Recognize(text); len(spans) != 0 {
			t.Errorf("expected no spans in %q, got %v", text, spanTexts(spans))
		}
	}
}

func TestRecognize_AllCapsRejected(t *testing.T) {
	h := NewHeuristic()
	spans := h.Recognize("CONSTRUTORA SILVA LTDA venceu a licitação")
	if len(spans) != 0 {
		t.Errorf("all-caps tokens are not names, got %v", spanTexts(spans))
	}
}

func TestNullRecognizer(t *testing.T) {
	if spans := (Null{}).Recognize("Maria Silva solicitou"); spans != nil {
		t.Errorf("Null recognizer must return nil, got %v", spans)
	}
}
