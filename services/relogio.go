package services

import (
	"time"
	_ "time/tzdata"
)

// Fuso civil fixo da instituição; os checks nunca usam o fuso do dispositivo
const DefaultTimezone = "America/Fortaleza"

// Relogio abstrai a fonte de tempo para que os testes possam fixar o horário
type Relogio interface {
	Agora() time.Time
}

type relogioSistema struct{}

func (relogioSistema) Agora() time.Time {
	return time.Now()
}

// NewRelogioSistema retorna o relógio de produção
func NewRelogioSistema() Relogio {
	return relogioSistema{}
}

// LocalInstituicao retorna o fuso da instituição
func LocalInstituicao() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// tzdata embutido; só cai aqui se o nome do fuso estiver errado
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}
