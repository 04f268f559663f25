package quiz

const (
	CategoryPiracy         = "Pirataria e uso ético de software"
	CategoryDigitalRights  = "Direitos digitais e contratos virtuais"
	CategoryInclusion      = "Inclusão digital e acessibilidade"
	CategorySustainability = "Sustentabilidade e lixo eletrônico"
	CategoryDataProtection = "Proteção de dados pessoais"
	CategorySecurityLGPD   = "Segurança da informação e LGPD"
)

// DefaultBank returns the built-in bank on digital ethics and Brazilian data
// protection law.
func DefaultBank() *Bank {
	questions := make([]Question, len(defaultQuestions))
	for idx, question := range defaultQuestions {
		question.Options = append([]string(nil), question.Options...)
		questions[idx] = question
	}
	return &Bank{questions: questions}
}

var defaultQuestions = []Question{
	{
		ID:       "1",
		Category: CategoryPiracy,
		Prompt:   "O uso de software pirata em empresas é legal desde que seja apenas para fins educacionais?",
		Options: []string{
			"Sim, desde que não seja comercializado",
			"Não, é ilegal em qualquer contexto empresarial",
			"Sim, se for para aprendizado",
			"Depende do tipo de software",
		},
		CorrectIndex: 1,
		Explanation:  "O uso de software pirata em empresas é sempre ilegal, independentemente da finalidade. Viola direitos autorais e pode resultar em multas e processos.",
	},
	{
		ID:       "2",
		Category: CategoryPiracy,
		Prompt:   "Qual das alternativas representa uma forma ética de usar software sem violar direitos autorais?",
		Options: []string{
			"Baixar versões crackeadas de sites confiáveis",
			"Compartilhar uma licença paga com vários usuários",
			"Usar software de código aberto ou versões gratuitas oficiais",
			"Usar versões de teste permanentemente",
		},
		CorrectIndex: 2,
		Explanation:  "Software de código aberto e versões gratuitas oficiais são formas legais e éticas de usar programas sem violar direitos autorais.",
	},
	{
		ID:       "3",
		Category: CategoryDigitalRights,
		Prompt:   "Ao clicar em \"Aceito\" nos termos de uso de um aplicativo, você está:",
		Options: []string{
			"Apenas concordando formalmente, mas sem valor legal",
			"Criando um contrato válido juridicamente",
			"Concordando temporariamente até ler os termos",
			"Não está assumindo nenhum compromisso",
		},
		CorrectIndex: 1,
		Explanation:  "Ao aceitar termos de uso, você está estabelecendo um contrato digital válido juridicamente, com direitos e obrigações para ambas as partes.",
	},
	{
		ID:       "4",
		Category: CategoryDigitalRights,
		Prompt:   "Uma empresa pode alterar os termos de uso sem notificar os usuários?",
		Options: []string{
			"Sim, a qualquer momento",
			"Não, é obrigada a notificar e obter novo consentimento",
			"Sim, desde que as mudanças sejam pequenas",
			"Não, precisa de autorização judicial",
		},
		CorrectIndex: 1,
		Explanation:  "A empresa deve notificar os usuários sobre alterações nos termos de uso e, dependendo da mudança, obter novo consentimento, conforme estabelece o Marco Civil da Internet.",
	},
	{
		ID:       "5",
		Category: CategoryInclusion,
		Prompt:   "O que significa acessibilidade digital?",
		Options: []string{
			"Disponibilizar internet gratuita para todos",
			"Garantir que todos possam acessar e usar recursos digitais, incluindo pessoas com deficiência",
			"Criar sites apenas em português",
			"Oferecer computadores mais baratos",
		},
		CorrectIndex: 1,
		Explanation:  "Acessibilidade digital significa garantir que pessoas com deficiências possam perceber, entender, navegar e interagir com tecnologias digitais.",
	},
	{
		ID:       "6",
		Category: CategoryInclusion,
		Prompt:   "Qual recurso NÃO contribui para a acessibilidade web?",
		Options: []string{
			"Texto alternativo em imagens",
			"Navegação por teclado",
			"Uso exclusivo de cores para transmitir informações",
			"Legendas em vídeos",
		},
		CorrectIndex: 2,
		Explanation:  "Depender apenas de cores para transmitir informações prejudica pessoas com daltonismo. É necessário usar também ícones, textos ou padrões.",
	},
	{
		ID:       "7",
		Category: CategorySustainability,
		Prompt:   "Qual é a forma correta de descartar equipamentos eletrônicos obsoletos?",
		Options: []string{
			"Jogar no lixo comum",
			"Entregar em pontos de coleta de lixo eletrônico",
			"Queimar para reduzir volume",
			"Enterrar no quintal",
		},
		CorrectIndex: 1,
		Explanation:  "Equipamentos eletrônicos contêm substâncias tóxicas e devem ser entregues em pontos de coleta especializados para reciclagem adequada.",
	},
	{
		ID:       "8",
		Category: CategorySustainability,
		Prompt:   "O que é obsolescência programada?",
		Options: []string{
			"Programas de reciclagem de eletrônicos",
			"Estratégia de reduzir propositalmente a vida útil de produtos",
			"Software que detecta produtos obsoletos",
			"Programa de desconto em eletrônicos novos",
		},
		CorrectIndex: 1,
		Explanation:  "Obsolescência programada é a estratégia de fabricar produtos com vida útil limitada propositalmente, gerando mais lixo eletrônico e consumo.",
	},
	{
		ID:       "9",
		Category: CategoryDataProtection,
		Prompt:   "Segundo a LGPD, dados pessoais sensíveis incluem:",
		Options: []string{
			"Apenas CPF e RG",
			"Origem racial, dados de saúde, biométricos e orientação sexual",
			"Somente senhas bancárias",
			"Apenas informações de cartão de crédito",
		},
		CorrectIndex: 1,
		Explanation:  "Dados sensíveis pela LGPD incluem origem racial ou étnica, convicção religiosa, opinião política, dados de saúde, biométricos, orientação sexual, entre outros.",
	},
	{
		ID:       "10",
		Category: CategoryDataProtection,
		Prompt:   "Você pode solicitar a exclusão dos seus dados pessoais de uma empresa?",
		Options: []string{
			"Não, uma vez fornecidos, pertencem à empresa",
			"Sim, é um direito garantido pela LGPD",
			"Somente se pagar uma taxa",
			"Apenas com ordem judicial",
		},
		CorrectIndex: 1,
		Explanation:  "A LGPD garante o direito à eliminação de dados pessoais tratados com consentimento, salvo em casos específicos previstos em lei.",
	},
	{
		ID:       "11",
		Category: CategorySecurityLGPD,
		Prompt:   "O que é um vazamento de dados?",
		Options: []string{
			"Quando uma pessoa esquece sua senha",
			"Quando dados confidenciais são expostos a pessoas não autorizadas",
			"Quando um site fica fora do ar",
			"Quando um arquivo é excluído acidentalmente",
		},
		CorrectIndex: 1,
		Explanation:  "Vazamento de dados ocorre quando informações confidenciais são expostas, acessadas ou divulgadas de forma não autorizada.",
	},
	{
		ID:       "12",
		Category: CategorySecurityLGPD,
		Prompt:   "Qual é a multa máxima prevista na LGPD para empresas que violarem a lei?",
		Options: []string{
			"R$ 10 mil",
			"R$ 500 mil",
			"R$ 50 milhões por infração",
			"Não há multas, apenas advertências",
		},
		CorrectIndex: 2,
		Explanation:  "A LGPD prevê multa de até 2% do faturamento da empresa, limitada a R$ 50 milhões por infração, além de outras sanções.",
	},
	{
		ID:       "13",
		Category: CategorySecurityLGPD,
		Prompt:   "O que caracteriza uma senha forte?",
		Options: []string{
			"Apenas números",
			"Nome e data de nascimento",
			"Combinação de letras maiúsculas, minúsculas, números e símbolos",
			"Palavras comuns do dicionário",
		},
		CorrectIndex: 2,
		Explanation:  "Uma senha forte deve combinar diferentes tipos de caracteres (letras maiúsculas e minúsculas, números e símbolos) e ter comprimento adequado.",
	},
	{
		ID:       "14",
		Category: CategorySecurityLGPD,
		Prompt:   "A LGPD se aplica a:",
		Options: []string{
			"Apenas grandes empresas",
			"Somente empresas de tecnologia",
			"Qualquer organização que trate dados pessoais no Brasil",
			"Apenas órgãos públicos",
		},
		CorrectIndex: 2,
		Explanation:  "A LGPD se aplica a qualquer operação de tratamento de dados pessoais realizada no Brasil, independentemente do tamanho ou setor da organização.",
	},
	{
		ID:       "15",
		Category: CategorySecurityLGPD,
		Prompt:   "O que você deve fazer se receber um e-mail suspeito solicitando dados pessoais?",
		Options: []string{
			"Responder imediatamente com as informações",
			"Ignorar, excluir e reportar como phishing",
			"Encaminhar para amigos para opinarem",
			"Clicar nos links para verificar se é legítimo",
		},
		CorrectIndex: 1,
		Explanation:  "E-mails suspeitos solicitando dados podem ser tentativas de phishing. Nunca forneça informações, exclua e reporte como spam ou phishing.",
	},
}
