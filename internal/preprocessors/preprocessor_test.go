// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractText_PlainText(t *testing.T) {
	path := writeTempFile(t, "pedido.txt", "Solicito os dados do requerente Maria Silva.\n")

	content, err := ExtractText(path)
	if err != nil {
		t.Fatal(err)
	}
	if content.Filename != "pedido.txt" {
		t.Errorf("filename = %q", content.Filename)
	}
	if content.Text != "Solicito os dados do requerente Maria Silva.\n" {
		t.Errorf("plain text should pass through unchanged, got %q", content.Text)
	}
	if content.WordCount != 7 {
		t.Errorf("word count = %d, want 7", content.WordCount)
	}
	if content.CharCount != len(content.Text) {
		t.Errorf("char count = %d, want %d", content.CharCount, len(content.Text))
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("relatorio.docx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nao-existe.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCanProcess(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pedido.txt", true},
		{"PEDIDO.TXT", true},
		{"dados.csv", true},
		{"notas.md", true},
		{"anexo.pdf", true},
		{"planilha.xlsx", false},
		{"script.go", false},
		{"sem-extensao", false},
	}
	for _, tt := range tests {
		if got := CanProcess(tt.path); got != tt.want {
			t.Errorf("CanProcess(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses spaces", "a  b   c", "a b c"},
		{"tabs become spaces", "a\tb", "a b"},
		{"drops blank lines", "a\n\n\nb", "a\nb"},
		{"trims line edges", "  a  \n  b  ", "a\nb"},
		{"keeps line structure", "linha um\nlinha dois", "linha um\nlinha dois"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
