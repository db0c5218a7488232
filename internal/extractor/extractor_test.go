// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

func findType(spans []detector.Span, typ string) *detector.Span {
	for i := range spans {
		if spans[i].Type == typ {
			return &spans[i]
		}
	}
	return nil
}

func TestExtract_CPF(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"formatted", "CPF do requerente: 123.456.789-00"},
		{"bare digits", "documento 12345678900 informado"},
		{"mixed separators", "cpf 123456789-00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spans := New().Extract(tc.text)
			span := findType(spans, "cpf")
			if span == nil {
				t.Fatalf("expected a cpf span in %q, got %v", tc.text, spans)
			}
			if span.Label != detector.LabelDocument {
				t.Errorf("expected DOCUMENT label, got %s", span.Label)
			}
			if span.Extractor != "pattern" {
				t.Errorf("expected pattern extractor, got %s", span.Extractor)
			}
		})
	}
}

func TestExtract_Email(t *testing.T) {
	spans := New().Extract("contato: maria.silva@example.com.br enviado")
	span := findType(spans, "email")
	if span == nil {
		t.Fatal("expected an email span")
	}
	if span.Text != "maria.silva@example.com.br" {
		t.Errorf("unexpected email text %q", span.Text)
	}
	if span.Label != detector.LabelEmail {
		t.Errorf("expected EMAIL label, got %s", span.Label)
	}
}

func TestExtract_Phone(t *testing.T) {
	cases := []string{
		"ligar para (11) 98765-4321",
		"telefone 11 3456-7890",
	}
	for _, text := range cases {
		spans := New().Extract(text)
		if findType(spans, "telefone") == nil {
			t.Errorf("expected a phone span in %q", text)
		}
	}
}

func TestExtract_PhoneNeedsLeadingBoundary(t *testing.T) {
	// A digit run glued to letters is a code, not a phone number.
	spans := New().Extract("ver proc12345678901 no sistema")
	if span := findType(spans, "telefone"); span != nil {
		t.Errorf("digits glued to letters must not become a phone span: %+v", *span)
	}
}

func TestExtract_Passport(t *testing.T) {
	spans := New().Extract("passaporte AB123456 emitido em 2023")
	span := findType(spans, "passaporte")
	if span == nil {
		t.Fatal("expected a passport span")
	}
	if span.Text != "AB123456" {
		t.Errorf("unexpected passport text %q", span.Text)
	}
}

func TestExtract_SpanOffsets(t *testing.T) {
	text := "email joao@test.com fim"
	spans := New().Extract(text)
	span := findType(spans, "email")
	if span == nil {
		t.Fatal("expected an email span")
	}
	if text[span.Start:span.End] != span.Text {
		t.Errorf("span text %q does not match offsets [%d:%d]", span.Text, span.Start, span.End)
	}
}

func TestExtract_NoIdentifiers(t *testing.T) {
	spans := New().Extract("Solicito informações sobre a licitação do ano passado")
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %v", spans)
	}
}

func TestWordExtractor_SpelledOutCPF(t *testing.T) {
	text := "meu cpf é um dois três quatro cinco seis sete oito nove zero um"
	spans := New().Extract(text)
	span := findType(spans, "cpf")
	if span == nil {
		t.Fatalf("expected a spelled-out cpf span, got %v", spans)
	}
	if span.Extractor != "extenso" {
		t.Errorf("expected extenso extractor, got %s", span.Extractor)
	}
}

func TestWordExtractor_ShortRunIgnored(t *testing.T) {
	spans := New().Extract("preciso de dois ou três dias")
	if len(spans) != 0 {
		t.Errorf("short number-word runs are prose, got %v", spans)
	}
}

func TestWordExtractor_DezCountsTwoDigits(t *testing.T) {
	// "dez dez dez" is three words but six digits: enough for a generic
	// document span.
	spans := New().Extract("código dez dez dez final")
	span := findType(spans, "documento")
	if span == nil {
		t.Fatalf("expected a documento span, got %v", spans)
	}
}

func TestTypeForDigitCount(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{11, "cpf"},
		{9, "rg"},
		{12, "cnpj"},
		{7, "documento"},
	}
	for _, tc := range cases {
		if got := typeForDigitCount(tc.n); got != tc.want {
			t.Errorf("typeForDigitCount(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
