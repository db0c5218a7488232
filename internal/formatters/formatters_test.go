// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
)

type stubFormatter struct{ name string }

func (s stubFormatter) Format([]Result, FormatterOptions) (string, error) { return "", nil }
func (s stubFormatter) Name() string                                      { return s.name }
func (s stubFormatter) Description() string                               { return "stub" }
func (s stubFormatter) FileExtension() string                             { return ".stub" }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubFormatter{name: "alpha"})
	r.Register(stubFormatter{name: "beta"})

	if _, ok := r.Get("alpha"); !ok {
		t.Error("expected alpha to be registered")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("missing formatter should not resolve")
	}
	if len(r.List()) != 2 {
		t.Errorf("expected 2 formatters, got %v", r.List())
	}
}

func TestRegistry_OverwriteByName(t *testing.T) {
	r := NewRegistry()
	r.Register(stubFormatter{name: "alpha"})
	r.Register(stubFormatter{name: "alpha"})
	if len(r.List()) != 1 {
		t.Errorf("same name must overwrite, got %v", r.List())
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export("does-not-exist", nil, FormatterOptions{})
	if err == nil {
		t.Error("expected an error for unknown format")
	}
}

func TestResult_Shape(t *testing.T) {
	res := Result{Source: "req.txt", Document: engine.DocumentResult{Intent: engine.IntentPublic}}
	if res.Document.HasPersonalData() {
		t.Error("public result misreported as personal")
	}
}
