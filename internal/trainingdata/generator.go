// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package trainingdata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
)

// Generator produces balanced, seeded synthetic corpora of information
// request texts. The same seed always yields the same dataset.
type Generator struct {
	rng *rand.Rand

	firstNames []string
	lastNames  []string
}

// NewGenerator builds a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		firstNames: generatorFirstNames,
		lastNames:  generatorLastNames,
	}
}

var generatorFirstNames = []string{
	"Ana", "Bruno", "Camila", "Carlos", "Daniela", "Eduardo", "Fernanda",
	"Gabriel", "Helena", "João", "Juliana", "Lucas", "Mariana", "Paulo",
	"Rafael", "Renata", "Roberto", "Sofia", "Thiago", "Vanessa",
}

var generatorLastNames = []string{
	"Almeida", "Barbosa", "Carvalho", "Costa", "Ferreira", "Gomes",
	"Lima", "Martins", "Oliveira", "Pereira", "Ribeiro", "Rodrigues",
	"Santos", "Silva", "Souza", "Teixeira",
}

var generatorCompanies = []string{
	"BIOCASA COMERCIO DE MATERIAL FISIOTERAPICO LTDA",
	"CONSTRUTORA SILVA E SANTOS S.A.",
	"TRANSPORTADORA RÁPIDA LTDA",
	"COMERCIAL ATACADISTA DO NORDESTE",
	"SERVIÇOS DE ENGENHARIA XYZ EIRELI",
}

type template struct {
	format string
	kind   string
}

// Templates where a name occupies an individualizing role or sits next
// to identifying data.
var personalTemplates = []template{
	{"Requerente: %[1]s", "papel_nominal"},
	{"Solicitante: %[1]s", "papel_nominal"},
	{"Cidadão %[1]s solicitou", "papel_nominal"},
	{"Titular dos dados: %[1]s", "papel_nominal"},
	{"%[1]s, CPF %[2]s", "dados_associados"},
	{"%[1]s, email: %[3]s", "dados_associados"},
	{"%[1]s solicitou acesso à informação", "verbo_individual"},
	{"%[1]s requereu documentos", "verbo_individual"},
	{"%[1]s protocolou pedido", "verbo_individual"},
	{"%[1]s compareceu para atendimento", "verbo_individual"},
	{"Nome: %[1]s", "contexto_id"},
	{"Identificação: %[1]s", "contexto_id"},
	{"Prezados, na qualidade de representante da %[4]s, %[1]s solicita informações.", "caso_complexo"},
}

// Templates where a name is a public denomination, or where no name
// appears at all.
var publicTemplates = []template{
	{"Hospital %[1]s", "instituicao"},
	{"Escola Municipal %[1]s", "instituicao"},
	{"Biblioteca %[1]s", "instituicao"},
	{"Teatro %[1]s", "instituicao"},
	{"Rua %[1]s", "toponimo"},
	{"Avenida %[1]s", "toponimo"},
	{"Praça %[1]s", "toponimo"},
	{"Lei %[1]s", "lei_homenagem"},
	{"Decreto %[1]s", "lei_homenagem"},
	{"Prêmio %[1]s de Direitos Humanos", "premio"},
	{"Programa %[1]s", "programa"},
	{"Projeto %[1]s", "projeto"},
	{"Relatório %[1]s", "relatorio_nomeado"},
	{"%[4]s solicitou informações", "empresa_juridica"},
	{"A empresa %[4]s protocolou", "empresa_juridica"},
	{"Processo %[5]s", "processo"},
	{"Protocolo %[5]s", "processo"},
	{"Solicitação de dados sobre licitação", "pedido_generico"},
	{"Informações sobre contrato público", "pedido_generico"},
}

func (g *Generator) name(withTitle bool) string {
	first := g.firstNames[g.rng.Intn(len(g.firstNames))]
	last := g.lastNames[g.rng.Intn(len(g.lastNames))]

	if withTitle && g.rng.Float64() < 0.3 {
		titles := []string{"Dr.", "Dra.", "Prof.", "Profª", "Eng."}
		return titles[g.rng.Intn(len(titles))] + " " + first + " " + last
	}
	if g.rng.Float64() < 0.3 {
		middle := g.firstNames[g.rng.Intn(len(g.firstNames))]
		return first + " " + middle + " " + last
	}
	return first + " " + last
}

func (g *Generator) cpf() string {
	d := make([]byte, 11)
	for i := range d {
		d[i] = byte('0' + g.rng.Intn(10))
	}
	if g.rng.Intn(2) == 0 {
		return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
	}
	return string(d)
}

func (g *Generator) email() string {
	first := strings.ToLower(g.firstNames[g.rng.Intn(len(g.firstNames))])
	first = strings.Map(stripAccent, first)
	domains := []string{"gmail.com", "outlook.com", "yahoo.com.br", "hotmail.com"}
	return fmt.Sprintf("%s%d@%s", first, 1+g.rng.Intn(999), domains[g.rng.Intn(len(domains))])
}

func stripAccent(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã':
		return 'a'
	case 'é', 'ê':
		return 'e'
	case 'í':
		return 'i'
	case 'ó', 'ô', 'õ':
		return 'o'
	case 'ú':
		return 'u'
	case 'ç':
		return 'c'
	}
	return r
}

func (g *Generator) company() string {
	return generatorCompanies[g.rng.Intn(len(generatorCompanies))]
}

func (g *Generator) processNumber() string {
	return fmt.Sprintf("%d-%d/%d", 1000+g.rng.Intn(9000), 100+g.rng.Intn(900), 2020+g.rng.Intn(6))
}

// render fills a template, returning the text and the person name used
// (empty when the template takes no name).
func (g *Generator) render(t template, withTitle bool) (string, string) {
	if !strings.Contains(t.format, "%") {
		return t.format, ""
	}
	name := g.name(withTitle)
	return fmt.Sprintf(t.format, name, g.cpf(), g.email(), g.company(), g.processNumber()), name
}

// PersonalExamples generates n examples whose texts carry personal
// data. The rendered name is annotated as a PESSOA entity, so the
// examples double as span-labeled fixtures.
func (g *Generator) PersonalExamples(n int) []Example {
	examples := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		t := personalTemplates[g.rng.Intn(len(personalTemplates))]
		text, name := g.render(t, false)
		ex := Example{
			Text:   text,
			Intent: engine.IntentPersonalData,
			Kind:   t.kind,
		}
		if pos := strings.Index(text, name); name != "" && pos >= 0 {
			ex.Entities = append(ex.Entities, ExampleEntity{
				Start:  pos,
				End:    pos + len(name),
				Value:  name,
				Entity: "PESSOA",
				Role:   t.kind,
			})
		}
		examples = append(examples, ex)
	}
	return examples
}

// PublicExamples generates n examples whose texts are public data,
// including full person names used as denominations. Denomination
// names are not annotated: they do not refer to a person.
func (g *Generator) PublicExamples(n int) []Example {
	examples := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		t := publicTemplates[g.rng.Intn(len(publicTemplates))]
		text, _ := g.render(t, true)
		examples = append(examples, Example{
			Text:   text,
			Intent: engine.IntentPublic,
			Kind:   t.kind,
		})
	}
	return examples
}

// Generate produces a shuffled balanced corpus.
func (g *Generator) Generate(nPersonal, nPublic int) []Example {
	all := append(g.PersonalExamples(nPersonal), g.PublicExamples(nPublic)...)
	g.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all
}

// Split divides examples into train and test sets, keeping each intent
// balanced according to testFraction.
func Split(examples []Example, testFraction float64, seed int64) (train, test []Example) {
	rng := rand.New(rand.NewSource(seed))

	byIntent := map[string][]Example{}
	for _, ex := range examples {
		byIntent[ex.Intent] = append(byIntent[ex.Intent], ex)
	}

	for _, intent := range []string{engine.IntentPublic, engine.IntentPersonalData} {
		group := byIntent[intent]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		nTest := int(float64(len(group)) * testFraction)
		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}

	rng.Shuffle(len(train), func(i, j int) {
		train[i], train[j] = train[j], train[i]
	})
	rng.Shuffle(len(test), func(i, j int) {
		test[i], test[j] = test[j], test[i]
	})
	return train, test
}
