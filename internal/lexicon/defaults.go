// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lexicon

// Default phrase lists for Brazilian public-records requests. Grouped by
// the legal function they signal, per the LAI disclosure test: a request
// that does not allow identification of a natural person may be treated
// as public.

// defaultExclusionTerms are public-denomination cues: a name right next
// to one of these denotes an institution, place, law, or honor, not an
// acting individual.
var defaultExclusionTerms = []string{
	// Denominações institucionais
	"hospital", "maternidade", "upa", "ubs", "posto de saúde", "clínica",
	"policlínica", "ambulatório", "pronto-socorro", "pronto socorro",

	"escola", "colégio", "universidade", "faculdade", "instituto", "fundação",
	"creche", "centro educacional", "campus",

	"biblioteca", "museu", "arquivo", "teatro", "centro cultural", "galeria",
	"auditório", "casa de cultura", "memorial",

	// Vias públicas e topônimos
	"rua", "r.", "avenida", "av.", "alameda", "travessa", "praça",
	"largo", "rodovia", "estrada", "via", "viaduto", "ponte", "túnel",
	"rotatória", "passarela", "viela", "beco", "bairro", "distrito",

	// Edificações públicas
	"edifício", "prédio", "palácio", "fórum", "tribunal", "cartório",
	"delegacia", "batalhão", "quartel", "prefeitura", "câmara", "assembleia",

	// Atos normativos e homenagens
	"lei", "decreto", "portaria", "resolução", "instrução normativa",
	"programa", "projeto", "plano", "prêmio", "medalha", "comenda",
	"relatório", "parecer", "nota técnica",

	// Empresas (sufixos)
	"s.a.", "sa", "ltda", "ltda.", "eireli", "me", "mei", "companhia",
	"empresa", "grupo", "holding", "associação", "cooperativa",
}

// defaultIndividualizingVerbs are individual actions: a name near one of
// these performed an act as a natural person.
var defaultIndividualizingVerbs = []string{
	"solicitou", "requereu", "requisitou", "pediu", "demandou",
	"protocolou", "apresentou", "encaminhou", "enviou",
	"compareceu", "assinou", "autorizou", "declarou",
	"reclamou", "denunciou", "reportou",
}

// defaultIndividualizingRoles are nominal roles held by an individual.
var defaultIndividualizingRoles = []string{
	"solicitante", "requerente", "requisitante", "demandante",
	"cidadão", "cidadã", "munícipe", "contribuinte",
	"titular", "responsável", "representante", "interessado",
	"reclamante", "denunciante", "autor", "peticionário",
	"morador", "moradora", "residente", "paciente",
}

// defaultIdentificationContexts are form-style identification markers.
var defaultIdentificationContexts = []string{
	"nome:", "nome completo:", "identificação:", "titular:",
	"dados do solicitante", "dados do requerente",
	"qualidade de", "na qualidade de",
}

// Default returns the built-in Brazilian Portuguese lexicon store.
func Default() *Store {
	return NewStore(
		defaultExclusionTerms,
		defaultIndividualizingVerbs,
		defaultIndividualizingRoles,
		defaultIdentificationContexts,
	)
}
