// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

// Compact dictionaries of common Brazilian given names and surnames,
// used by the heuristic recognizer to separate person names from other
// capitalized phrases. Lowercase for O(1) case-insensitive lookup.

var firstNames = toSet([]string{
	"adriana", "alessandra", "alexandre", "aline", "amanda", "ana",
	"anderson", "andre", "andré", "andrea", "antonia", "antonio", "antônio",
	"beatriz", "bruna", "bruno", "camila", "carla", "carlos", "carolina",
	"cecilia", "cecília", "claudia", "cláudia", "cristiane", "cristina",
	"daniel", "daniela", "davi", "debora", "débora", "diego", "eduarda",
	"eduardo", "elaine", "eliane", "elisa", "emanuel", "fabiana", "fabio",
	"fábio", "felipe", "fernanda", "fernando", "flavia", "flávia",
	"francisca", "francisco", "gabriel", "gabriela", "geraldo", "gilberto",
	"guilherme", "gustavo", "helena", "henrique", "igor", "isabel",
	"isabela", "jessica", "jéssica", "joana", "joao", "joão", "jorge",
	"jose", "josé", "josefa", "juliana", "julio", "júlio", "larissa",
	"laura", "leandro", "leonardo", "leticia", "letícia", "lucas",
	"luciana", "luciano", "luis", "luiz", "luiza", "manoel", "manuela",
	"marcelo", "marcia", "márcia", "marcio", "márcio", "marcos", "maria",
	"mariana", "mario", "mário", "matheus", "miguel", "monica", "mônica",
	"natalia", "natália", "nicolas", "patricia", "patrícia", "paulo",
	"pedro", "rafael", "rafaela", "raimundo", "raquel", "regina", "renata",
	"renato", "ricardo", "roberta", "roberto", "rodrigo", "rosa",
	"rosangela", "rosângela", "sandra", "sebastiao", "sebastião",
	"sergio", "sérgio", "silvia", "sílvia", "simone", "sofia", "tatiana",
	"teresa", "thiago", "vanessa", "vera", "vinicius", "vinícius",
	"vitor", "vitoria", "vitória", "wagner", "wellington",
})

var lastNames = toSet([]string{
	"almeida", "alves", "andrade", "araujo", "araújo", "assis", "azevedo",
	"barbosa", "barros", "batista", "borges", "brito", "campos", "cardoso",
	"carvalho", "castro", "cavalcante", "cavalcanti", "correia", "costa",
	"cruz", "cunha", "dias", "duarte", "fernandes", "ferreira", "figueiredo",
	"fonseca", "freitas", "garcia", "gomes", "goncalves", "gonçalves",
	"lima", "lopes", "macedo", "machado", "magalhaes", "magalhães",
	"martins", "medeiros", "melo", "mendes", "mendonca", "mendonça",
	"miranda", "monteiro", "moraes", "morais", "moreira", "moura",
	"nascimento", "neves", "nogueira", "nunes", "oliveira", "pacheco",
	"paiva", "pereira", "pinheiro", "pinto", "pires", "queiroz", "ramos",
	"reis", "ribeiro", "rocha", "rodrigues", "sales", "santana", "santos",
	"silva", "silveira", "simoes", "simões", "soares", "sousa", "souza",
	"tavares", "teixeira", "torres", "vasconcelos", "vieira", "xavier",
})

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
