package services

import (
	"testing"
	"time"

	"portalubs/constants"
)

func horaLocal(hora, min, seg int) time.Time {
	return time.Date(2025, 3, 10, hora, min, seg, 0, LocalInstituicao())
}

func TestClassificarPeriodo(t *testing.T) {
	tests := []struct {
		nome    string
		quando  time.Time
		periodo string
	}{
		{"antes da manhã", horaLocal(6, 59, 59), ""},
		{"abertura da manhã", horaLocal(7, 0, 0), constants.PeriodoManha},
		{"meio da manhã", horaLocal(9, 30, 0), constants.PeriodoManha},
		{"último segundo da manhã", horaLocal(11, 59, 59), constants.PeriodoManha},
		{"meio-dia", horaLocal(12, 0, 0), ""},
		{"intervalo do almoço", horaLocal(12, 59, 59), ""},
		{"abertura da tarde", horaLocal(13, 0, 0), constants.PeriodoTarde},
		{"meio da tarde", horaLocal(15, 45, 10), constants.PeriodoTarde},
		{"fechamento exato da tarde", horaLocal(17, 0, 0), constants.PeriodoTarde},
		{"um segundo após o fechamento", horaLocal(17, 0, 1), ""},
		{"noite", horaLocal(21, 0, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			if got := ClassificarPeriodo(tt.quando); got != tt.periodo {
				t.Errorf("ClassificarPeriodo(%s) = %q, queria %q", tt.quando, got, tt.periodo)
			}
		})
	}
}

func TestClassificarPeriodoConverteFuso(t *testing.T) {
	// 12:00 UTC é 09:00 no fuso da instituição (-03), dentro da manhã
	emUTC := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := ClassificarPeriodo(emUTC); got != constants.PeriodoManha {
		t.Errorf("ClassificarPeriodo(12:00 UTC) = %q, queria %q", got, constants.PeriodoManha)
	}
}

func TestDataLocal(t *testing.T) {
	// 01:00 UTC do dia 11 ainda é dia 10 no fuso da instituição
	emUTC := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)
	if got := DataLocal(emUTC); got != "2025-03-10" {
		t.Errorf("DataLocal = %q, queria 2025-03-10", got)
	}
}
