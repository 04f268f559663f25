package hangman

import "math/rand"

type WordBank []Word

// Pick returns a uniformly chosen word. A nil rng uses the package-level
// source.
func (b WordBank) Pick(rng *rand.Rand) (Word, bool) {
	if len(b) == 0 {
		return Word{}, false
	}
	if rng == nil {
		return b[rand.Intn(len(b))], true
	}
	return b[rng.Intn(len(b))], true
}

func DefaultWords() WordBank {
	return append(WordBank(nil), defaultWords...)
}

var defaultWords = WordBank{
	{Text: "LGPD", Hint: "Lei de proteção de dados no Brasil", Category: "Legislação"},
	{Text: "PHISHING", Hint: "Técnica de fraude online para roubar dados", Category: "Segurança"},
	{Text: "FIREWALL", Hint: "Barreira de proteção de rede", Category: "Segurança"},
	{Text: "CRIPTOGRAFIA", Hint: "Técnica de codificação de informações", Category: "Segurança"},
	{Text: "MALWARE", Hint: "Software malicioso", Category: "Segurança"},
	{Text: "BACKUP", Hint: "Cópia de segurança de dados", Category: "Tecnologia"},
	{Text: "COOKIE", Hint: "Arquivo que rastreia atividades online", Category: "Privacidade"},
	{Text: "SPAM", Hint: "Mensagem não solicitada em massa", Category: "Internet"},
	{Text: "RANSOMWARE", Hint: "Malware que sequestra dados", Category: "Segurança"},
	{Text: "VPN", Hint: "Rede privada virtual", Category: "Segurança"},
	{Text: "ANTIVIRUS", Hint: "Programa de proteção contra vírus", Category: "Segurança"},
	{Text: "HACKER", Hint: "Especialista em invadir sistemas", Category: "Segurança"},
	{Text: "SENHA", Hint: "Código secreto de acesso", Category: "Segurança"},
	{Text: "PIRATARIA", Hint: "Cópia ilegal de software", Category: "Ética"},
	{Text: "ACESSIBILIDADE", Hint: "Facilidade de uso para todos", Category: "Inclusão"},
	{Text: "SUSTENTABILIDADE", Hint: "Práticas ambientalmente responsáveis", Category: "Meio Ambiente"},
	{Text: "AUTENTICACAO", Hint: "Verificação de identidade", Category: "Segurança"},
	{Text: "CLOUD", Hint: "Armazenamento na nuvem", Category: "Tecnologia"},
	{Text: "TOKEN", Hint: "Código de segurança temporário", Category: "Segurança"},
	{Text: "FIREWALL", Hint: "Barreira contra acessos não autorizados", Category: "Segurança"},
}
