package dto

// ResultadoCheck é o resultado da marcação de check disparada por um upload
type ResultadoCheck struct {
	Marcado bool   `json:"marcado"`
	Periodo string `json:"periodo"` // manha | tarde | "" quando fora da janela
	Motivo  string `json:"motivo"`
}

// ChecksDoDia expõe os flags do dia corrente para o dashboard do responsável
type ChecksDoDia struct {
	Data  string `json:"data"`
	Manha bool   `json:"manha"`
	Tarde bool   `json:"tarde"`
}

// EventoCheck é o payload publicado no websocket quando um check é marcado
type EventoCheck struct {
	UserID  uint   `json:"userId"`
	PostoID uint   `json:"postoId"`
	Periodo string `json:"periodo"`
	Data    string `json:"data"`
}

// DiaDetalhe é a linha dia a dia do relatório de conformidade
type DiaDetalhe struct {
	Data         string `json:"data"`
	Manha        bool   `json:"manha"`
	Tarde        bool   `json:"tarde"`
	Completo     bool   `json:"completo"`
	UltimoUserID uint   `json:"ultimoUserId,omitempty"`
}

// RelatorioPosto agrega a conformidade de um posto no intervalo consultado
type RelatorioPosto struct {
	PostoID        uint         `json:"postoId"`
	PostoNome      string       `json:"postoNome"`
	TotalDiasUteis int          `json:"totalDiasUteis"`
	DiasComManha   int          `json:"diasComManha"`
	DiasComTarde   int          `json:"diasComTarde"`
	DiasCompletos  int          `json:"diasCompletos"`
	DiasPerdidos   int          `json:"diasPerdidos"`
	Dias           []DiaDetalhe `json:"dias"`
}
