package constants

// Papéis de usuário
const (
	RoleAdmin       = "admin"
	RoleResponsavel = "responsavel"
)

// Períodos de check diário
const (
	PeriodoManha = "manha"
	PeriodoTarde = "tarde"
)

// Status de solicitação de correção
const (
	CorrecaoPendente  = "pendente"
	CorrecaoAprovada  = "aprovado"
	CorrecaoRejeitada = "rejeitado"
)

// Status do posto
const (
	PostoAberto  = "aberto"
	PostoFechado = "fechado"
)

// Janelas de check (hora local da instituição)
const (
	ManhaInicioHora = 7  // 07:00:00 inclusivo
	ManhaFimHora    = 11 // até 11:59:59 inclusivo
	TardeInicioHora = 13 // 13:00:00 inclusivo
	TardeFimHora    = 17 // até 17:00:00 inclusivo
)

// Retenção de checks diários (dias corridos)
const RetencaoChecksDias = 60
