package services

import (
	"time"

	"portalubs/constants"
)

// ClassificarPeriodo classifica um instante em um dos períodos de check:
// manhã (07:00:00–11:59:59), tarde (13:00:00–17:00:00) ou nenhum ("").
// O intervalo 12:00–12:59 e qualquer horário fora das janelas não contam.
func ClassificarPeriodo(t time.Time) string {
	local := t.In(LocalInstituicao())
	h := local.Hour()

	switch {
	case h >= constants.ManhaInicioHora && h <= constants.ManhaFimHora:
		return constants.PeriodoManha
	case h >= constants.TardeInicioHora && h < constants.TardeFimHora:
		return constants.PeriodoTarde
	case h == constants.TardeFimHora && local.Minute() == 0 && local.Second() == 0:
		// 17:00:00 em ponto ainda fecha a janela da tarde
		return constants.PeriodoTarde
	default:
		return ""
	}
}

// DataLocal devolve a data-calendário do instante no fuso da instituição,
// no formato usado pela coluna data de update_checks
func DataLocal(t time.Time) string {
	return t.In(LocalInstituicao()).Format("2006-01-02")
}
