// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input documents into plain text the
// engine can classify.
package preprocessors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a file extension with no extractor.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TextContent is the extraction result for one file.
type TextContent struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	CharCount int
}

// ExtractText reads the file and extracts its plain text, picking the
// extractor by extension. Plain text (.txt, .csv, .md) passes through
// unchanged.
func ExtractText(filePath string) (*TextContent, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDF(filePath)
	case ".txt", ".text", ".csv", ".md":
		return extractPlain(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filePath))
	}
}

// CanProcess reports whether the file extension has an extractor.
func CanProcess(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf", ".txt", ".text", ".csv", ".md":
		return true
	}
	return false
}

func extractPlain(filePath string) (*TextContent, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	content := &TextContent{
		Filename: filepath.Base(filePath),
		Text:     string(data),
	}
	content.fillCounts()
	return content, nil
}

func (tc *TextContent) fillCounts() {
	tc.WordCount = len(strings.Fields(tc.Text))
	tc.CharCount = len(tc.Text)
}

// normalizeText trims blank lines and collapses repeated spaces while
// keeping line structure, since the classifiers read context windows
// around byte offsets.
func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
