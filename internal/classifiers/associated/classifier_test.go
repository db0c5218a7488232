// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package associated

import (
	"strings"
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/detector"
)

func spanFor(t *testing.T, text, name string) detector.Span {
	t.Helper()
	start := strings.Index(text, name)
	if start < 0 {
		t.Fatalf("name %q not in text %q", name, text)
	}
	return detector.Span{
		Start: start,
		End:   start + len(name),
		Text:  name,
		Label: detector.LabelPerson,
	}
}

func TestCheck_AssociatedData(t *testing.T) {
	c := New(0)
	cases := []struct {
		name string
		text string
		span string
	}{
		{"cpf keyword", "Maria Silva, CPF 123.456.789-00", "Maria Silva"},
		{"rg keyword", "João Souza, RG 12.345.678-9", "João Souza"},
		{"email keyword", "contato de Ana Costa por email", "Ana Costa"},
		{"phone keyword", "Pedro Alves, telefone para retorno", "Pedro Alves"},
		{"bare cpf digits", "Carlos Lima informou 12345678900", "Carlos Lima"},
		{"email address", "Luiza Rocha (luiza@example.com)", "Luiza Rocha"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !c.Check(tc.text, spanFor(t, tc.text, tc.span)) {
				t.Errorf("expected associated data in %q", tc.text)
			}
		})
	}
}

func TestCheck_NoAssociatedData(t *testing.T) {
	c := New(0)
	text := "Maria Silva foi mencionada no documento oficial"
	if c.Check(text, spanFor(t, text, "Maria Silva")) {
		t.Error("no identifiers near the name, expected false")
	}
}

func TestCheck_DataOutsideWindow(t *testing.T) {
	c := New(20)
	text := "CPF 123.456.789-00 registrado em processo antigo sem relação; em outro assunto citamos Maria Silva"
	if c.Check(text, spanFor(t, text, "Maria Silva")) {
		t.Error("identifier outside the window must not count")
	}
}
