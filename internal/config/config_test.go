// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/exclusion"
	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Equal(t, "heuristic", cfg.Defaults.Recognizer)
	assert.Equal(t, exclusion.DefaultRadius, cfg.Windows.Exclusion)
	assert.Equal(t, role.DefaultRadius, cfg.Windows.Role)
	assert.InDelta(t, 0.90, cfg.Confidence.PersonalData, 1e-9)
	assert.InDelta(t, 0.85, cfg.Confidence.Public, 1e-9)
	assert.Equal(t, "extend", cfg.Lexicons.Mode)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  recognizer: none
windows:
  exclusion: 40
confidence:
  personal_data: 0.95
  public: 0.80
lexicons:
  exclusion_terms:
    - ginásio
profiles:
  audit:
    format: yaml
    verbose: true
    description: detailed audit output
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.Equal(t, "none", cfg.Defaults.Recognizer)
	assert.Equal(t, 40, cfg.Windows.Exclusion)
	// Unset values keep defaults
	assert.Equal(t, role.DefaultRadius, cfg.Windows.Role)
	assert.InDelta(t, 0.95, cfg.Confidence.PersonalData, 1e-9)

	profile := cfg.GetProfile("audit")
	require.NotNil(t, profile)
	assert.Equal(t, "yaml", profile.Format)
	assert.True(t, profile.Verbose)

	assert.Nil(t, cfg.GetProfile("missing"))
	assert.Equal(t, []string{"audit"}, cfg.ListProfiles())
}

func TestLoadConfig_ExtendMode(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
lexicons:
  exclusion_terms:
    - ginásio
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	store := cfg.BuildLexicons()
	require.NoError(t, store.Validate())

	_, found := store.ExclusionTerms.Match("no ginásio municipal")
	assert.True(t, found, "extended term should match")
	_, found = store.ExclusionTerms.Match("perto do hospital")
	assert.True(t, found, "built-in terms remain in extend mode")
}

func TestLoadConfig_ReplaceMode(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
lexicons:
  mode: replace
  exclusion_terms:
    - ginásio
  individualizing_verbs:
    - solicitou
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	store := cfg.BuildLexicons()
	_, found := store.ExclusionTerms.Match("perto do hospital")
	assert.False(t, found, "built-in terms are dropped in replace mode")
}

func TestLoadConfig_ReplaceModeRequiresExclusions(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
lexicons:
  mode: replace
  individualizing_verbs:
    - solicitou
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestValidateConfig_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative radius", func(c *Config) { c.Windows.Role = -1 }},
		{"confidence above one", func(c *Config) { c.Confidence.PersonalData = 1.5 }},
		{"negative confidence", func(c *Config) { c.Confidence.Public = -0.1 }},
		{"unknown lexicon mode", func(c *Config) { c.Lexicons.Mode = "merge" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig("")
			require.NoError(t, err)
			tc.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0o600))

	cfg := LoadConfigOrDefault(configPath)
	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestEngineOptions_Mapping(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	cfg.Windows.Exclusion = 25
	cfg.Confidence.Public = 0.5

	opts := cfg.EngineOptions()
	assert.Equal(t, 25, opts.ExclusionRadius)
	assert.InDelta(t, 0.5, opts.ConfidencePublic, 1e-9)
}
