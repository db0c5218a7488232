// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/associated"
	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/exclusion"
	"github.com/gmcaixeta/PrivacyAware/internal/classifiers/role"
	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/lexicon"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format     string `yaml:"format"`
		Verbose    bool   `yaml:"verbose"`
		Debug      bool   `yaml:"debug"`
		NoColor    bool   `yaml:"no_color"`
		Recognizer string `yaml:"recognizer"`
	} `yaml:"defaults"`

	// Context window radii, in bytes around the span
	Windows struct {
		Exclusion  int `yaml:"exclusion"`
		Role       int `yaml:"role"`
		Associated int `yaml:"associated"`
	} `yaml:"windows"`

	// Confidence values reported per intent
	Confidence struct {
		PersonalData float64 `yaml:"personal_data"`
		Public       float64 `yaml:"public"`
	} `yaml:"confidence"`

	// Lexicon overrides. "replace" mode swaps the built-in phrase lists
	// entirely; "extend" (the default) appends to them.
	Lexicons struct {
		Mode                   string   `yaml:"mode"`
		ExclusionTerms         []string `yaml:"exclusion_terms"`
		IndividualizingVerbs   []string `yaml:"individualizing_verbs"`
		IndividualizingRoles   []string `yaml:"individualizing_roles"`
		IdentificationContexts []string `yaml:"identification_contexts"`
	} `yaml:"lexicons"`

	// Profiles for different classification scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a classification profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Recognizer  string `yaml:"recognizer"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from a YAML file. An empty path
// returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Defaults.Recognizer = "heuristic"
	config.Windows.Exclusion = exclusion.DefaultRadius
	config.Windows.Role = role.DefaultRadius
	config.Windows.Associated = associated.DefaultRadius
	config.Confidence.PersonalData = engine.ConfidencePersonalData
	config.Confidence.Public = engine.ConfidencePublic
	config.Lexicons.Mode = "extend"

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("privacyaware.yaml") {
		return "privacyaware.yaml"
	}
	if fileExists("privacyaware.yml") {
		return "privacyaware.yml"
	}

	// Project-specific dotfile
	if fileExists(".privacyaware.yaml") {
		return ".privacyaware.yaml"
	}
	if fileExists(".privacyaware.yml") {
		return ".privacyaware.yml"
	}

	// Check standard location in home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	standardConfig := filepath.Join(home, ".privacyaware", "config.yaml")
	if fileExists(standardConfig) {
		return standardConfig
	}

	return ""
}

// LoadConfigOrDefault loads the given config file, falling back to the
// built-in defaults on any error.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Callers should not crash on a missing or bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ValidateConfig checks the configuration for invalid values
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	if config.Windows.Exclusion < 0 || config.Windows.Role < 0 || config.Windows.Associated < 0 {
		return fmt.Errorf("window radii must be non-negative")
	}
	if config.Confidence.PersonalData < 0 || config.Confidence.PersonalData > 1 {
		return fmt.Errorf("confidence.personal_data must be in [0,1]")
	}
	if config.Confidence.Public < 0 || config.Confidence.Public > 1 {
		return fmt.Errorf("confidence.public must be in [0,1]")
	}
	switch config.Lexicons.Mode {
	case "", "extend", "replace":
	default:
		return fmt.Errorf("unknown lexicon mode: %s", config.Lexicons.Mode)
	}
	if config.Lexicons.Mode == "replace" {
		if len(config.Lexicons.ExclusionTerms) == 0 {
			return fmt.Errorf("lexicon replace mode requires a non-empty exclusion_terms list")
		}
		if len(config.Lexicons.IndividualizingVerbs) == 0 &&
			len(config.Lexicons.IndividualizingRoles) == 0 &&
			len(config.Lexicons.IdentificationContexts) == 0 {
			return fmt.Errorf("lexicon replace mode requires at least one individualizing list")
		}
	}
	return nil
}

// BuildLexicons materializes the lexicon store described by the config.
func (c *Config) BuildLexicons() *lexicon.Store {
	if c.Lexicons.Mode == "replace" {
		return lexicon.NewStore(
			c.Lexicons.ExclusionTerms,
			c.Lexicons.IndividualizingVerbs,
			c.Lexicons.IndividualizingRoles,
			c.Lexicons.IdentificationContexts,
		)
	}

	def := lexicon.Default()
	return lexicon.NewStore(
		append(def.ExclusionTerms.Phrases(), c.Lexicons.ExclusionTerms...),
		append(def.IndividualizingVerbs.Phrases(), c.Lexicons.IndividualizingVerbs...),
		append(def.IndividualizingRoles.Phrases(), c.Lexicons.IndividualizingRoles...),
		append(def.IdentificationContexts.Phrases(), c.Lexicons.IdentificationContexts...),
	)
}

// EngineOptions maps the configured window radii onto engine options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		ExclusionRadius:  c.Windows.Exclusion,
		RoleRadius:       c.Windows.Role,
		AssociatedRadius: c.Windows.Associated,

		ConfidencePersonalData: c.Confidence.PersonalData,
		ConfidencePublic:       c.Confidence.Public,
	}
}

// ListProfiles returns the names of all defined profiles
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil when undefined
func (c *Config) GetProfile(name string) *Profile {
	if profile, ok := c.Profiles[name]; ok {
		return &profile
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
