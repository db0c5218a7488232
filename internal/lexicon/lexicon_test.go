// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lexicon

import (
	"errors"
	"testing"
)

func TestNewSet_NormalizesAndDeduplicates(t *testing.T) {
	s := NewSet("test", []string{"Rua", "rua", "S.A.", ""})
	phrases := s.Phrases()

	want := map[string]bool{"rua": true, "s.a.": true, "sa": true}
	if len(phrases) != len(want) {
		t.Fatalf("expected %d phrases, got %d: %v", len(want), len(phrases), phrases)
	}
	for _, p := range phrases {
		if !want[p] {
			t.Errorf("unexpected phrase %q", p)
		}
	}
}

func TestNewSet_LongestFirst(t *testing.T) {
	s := NewSet("test", []string{"rua", "escola municipal", "lei"})
	phrases := s.Phrases()
	if phrases[0] != "escola municipal" {
		t.Errorf("expected longest phrase first, got %q", phrases[0])
	}
}

func TestMatch_WordBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		phrases []string
		window  string
		match   bool
	}{
		{"standalone word matches", []string{"rua"}, "rua maria santos", true},
		{"word inside another does not match", []string{"rua"}, "arruaça na cidade", false},
		{"single letter needs own token", []string{"r."}, "casa amarela", false},
		{"single letter as token matches", []string{"r."}, "mora na r joão", true},
		{"sa does not match inside casa", []string{"s.a."}, "perto de casa", false},
		{"punctuation delimits", []string{"hospital"}, "no hospital, ontem", true},
		{"empty window", []string{"rua"}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSet("test", tc.phrases)
			_, got := s.Match(tc.window)
			if got != tc.match {
				t.Errorf("Match(%q) = %v, want %v", tc.window, got, tc.match)
			}
		})
	}
}

func TestMatch_ReturnsLongestPhrase(t *testing.T) {
	s := NewSet("test", []string{"escola", "escola municipal"})
	phrase, ok := s.Match("na escola municipal do bairro")
	if !ok {
		t.Fatal("expected a match")
	}
	if phrase != "escola municipal" {
		t.Errorf("expected longest phrase, got %q", phrase)
	}
}

func TestStoreValidate_EmptyExclusion(t *testing.T) {
	st := NewStore(nil, []string{"solicitou"}, []string{"requerente"}, nil)
	err := st.Validate()
	if !errors.Is(err, ErrEmptySet) {
		t.Errorf("expected ErrEmptySet, got %v", err)
	}
}

func TestStoreValidate_NoIndividualizingSets(t *testing.T) {
	st := NewStore([]string{"rua"}, nil, nil, nil)
	err := st.Validate()
	if !errors.Is(err, ErrEmptySet) {
		t.Errorf("expected ErrEmptySet, got %v", err)
	}
}

func TestStoreValidate_PartialIndividualizingSets(t *testing.T) {
	st := NewStore([]string{"rua"}, []string{"solicitou"}, nil, nil)
	if err := st.Validate(); err != nil {
		t.Errorf("one individualizing set is enough, got %v", err)
	}
}

func TestStoreValidate_Default(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default store should validate, got %v", err)
	}
}
