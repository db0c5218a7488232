// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help renders CLI help topics describing the decision layers
// and output formats.
package help

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/gmcaixeta/PrivacyAware/internal/formatters"

	"github.com/fatih/color"
)

// TopicInfo describes one decision layer for help output
type TopicInfo struct {
	Name             string   // Layer name (e.g., "exclusion")
	ShortDescription string   // One-line description for the topic list
	Detail           string   // Longer description of what the layer decides
	Reasons          []string // Reason strings this layer can emit
	Examples         []string // Usage examples
}

// System manages help content for the application
type System struct {
	topics  map[string]TopicInfo
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	s := &System{
		topics:  make(map[string]TopicInfo),
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"item":     color.New(color.FgGreen),
		},
	}
	for _, t := range builtinTopics {
		s.topics[t.Name] = t
	}
	return s
}

var builtinTopics = []TopicInfo{
	{
		Name:             "exclusion",
		ShortDescription: "Names used as public denominations are vetoed first",
		Detail: "A person name attached to an institution, street, law, prize or " +
			"named report denotes the thing, not the person. This veto runs before " +
			"any other layer and wins over individualizing evidence in the same text.",
		Reasons: []string{"contexto_exclusao"},
		Examples: []string{
			`privacyaware -text "Hospital São José fica na Rua Brasil"`,
		},
	},
	{
		Name:             "role",
		ShortDescription: "Names tied to an individual act or status are personal data",
		Detail: "A name near an individualizing verb (solicitou, requereu), a role " +
			"noun (requerente, solicitante) or an identification field (nome:, cpf:) " +
			"identifies a natural person.",
		Reasons: []string{"papel_individualizante"},
		Examples: []string{
			`privacyaware -text "Requerente: Maria Silva"`,
		},
	},
	{
		Name:             "associated",
		ShortDescription: "Names co-located with documents or contact data are personal data",
		Detail: "A name within reach of a CPF, RG, email or phone number is treated " +
			"as identifying even without an explicit role.",
		Reasons: []string{"dados_associados", "documento_ou_contato"},
		Examples: []string{
			`privacyaware -text "João Souza, CPF 123.456.789-00"`,
		},
	},
	{
		Name:             "default",
		ShortDescription: "A bare name with no individualizing context is public",
		Detail: "When no layer fires, the name alone does not identify anyone in " +
			"the request and the text stays public.",
		Reasons: []string{"sem_papel_individualizante"},
	},
}

// ShowTopics prints the list of help topics
func (s *System) ShowTopics(w io.Writer) {
	fmt.Fprintln(w, s.colors["title"].Sprint("Decision layers (in precedence order):"))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range builtinTopics {
		fmt.Fprintf(tw, "  %s\t%s\n", s.colors["item"].Sprint(t.Name), t.ShortDescription)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use -help-topic NAME for details.")
}

// ShowTopic prints detailed help for one topic
func (s *System) ShowTopic(w io.Writer, name string) error {
	t, ok := s.topics[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(s.topics))
		for n := range s.topics {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown help topic %q, available: %s", name, strings.Join(names, ", "))
	}

	fmt.Fprintln(w, s.colors["title"].Sprint(strings.ToUpper(t.Name)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Detail)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", s.colors["subtitle"].Sprint("Reasons:"), strings.Join(t.Reasons, ", "))
	if len(t.Examples) > 0 {
		fmt.Fprintln(w, s.colors["subtitle"].Sprint("Examples:"))
		for _, ex := range t.Examples {
			fmt.Fprintf(w, "  %s\n", ex)
		}
	}
	return nil
}

// ShowFormats prints the registered output formats
func (s *System) ShowFormats(w io.Writer) {
	fmt.Fprintln(w, s.colors["title"].Sprint("Output formats:"))
	fmt.Fprintln(w)

	names := formatters.List()
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range names {
		f, _ := formatters.Get(name)
		fmt.Fprintf(tw, "  %s\t%s\n", s.colors["item"].Sprint(name), f.Description())
	}
	tw.Flush()
}
