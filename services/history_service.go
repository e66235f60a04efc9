package services

import (
	"context"
	"time"

	"portalubs/dto"
	"portalubs/services/logger"
)

// HistoryService monta o relatório de conformidade por posto em um
// intervalo de datas, considerando apenas dias úteis (segunda a sexta).
// Somente leitura; pode ser chamado repetidamente com o mesmo intervalo.
type HistoryService struct {
	store  CheckStore
	postos PostoProvider
	logger logger.Logger
}

type HistoryServiceOptions struct {
	Store  CheckStore
	Postos PostoProvider
	Logger logger.Logger
}

func NewHistoryService(opts HistoryServiceOptions) *HistoryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HistoryService{
		store:  opts.Store,
		postos: opts.Postos,
		logger: opts.Logger,
	}
}

// RelatorioChecks produz, para cada posto, o total de dias úteis em
// [de, ate], quantos tiveram manhã/tarde marcadas, quantos ficaram
// completos (os dois períodos) e o detalhe dia a dia. Fins de semana ficam
// fora do denominador. Quando mais de um responsável marca o mesmo
// posto/dia, vale o último registro (um posto pode ter vários vinculados).
func (s *HistoryService) RelatorioChecks(ctx context.Context, de, ate time.Time) ([]dto.RelatorioPosto, error) {
	diasUteis := EnumerarDiasUteis(de, ate)

	checks, err := s.store.QueryUpdateChecks(ctx, DataLocal(de), DataLocal(ate))
	if err != nil {
		return nil, err
	}

	postos, err := s.postos.ListPostos(ctx)
	if err != nil {
		return nil, err
	}

	diaUtil := make(map[string]bool, len(diasUteis))
	for _, d := range diasUteis {
		diaUtil[d] = true
	}

	// (postoID, data) -> detalhe acumulado
	type chave struct {
		postoID uint
		data    string
	}
	detalhes := make(map[chave]*dto.DiaDetalhe)
	for i := range checks {
		check := &checks[i]
		if !diaUtil[check.Data] {
			continue
		}
		k := chave{postoID: check.PostoID, data: check.Data}
		det, ok := detalhes[k]
		if !ok {
			det = &dto.DiaDetalhe{Data: check.Data}
			detalhes[k] = det
		}
		det.Manha = det.Manha || check.Manha
		det.Tarde = det.Tarde || check.Tarde
		det.UltimoUserID = check.UserID
	}

	relatorio := make([]dto.RelatorioPosto, 0, len(postos))
	for _, posto := range postos {
		linha := dto.RelatorioPosto{
			PostoID:        posto.ID,
			PostoNome:      posto.Nome,
			TotalDiasUteis: len(diasUteis),
			Dias:           make([]dto.DiaDetalhe, 0, len(diasUteis)),
		}
		for _, data := range diasUteis {
			det := dto.DiaDetalhe{Data: data}
			if acc, ok := detalhes[chave{postoID: posto.ID, data: data}]; ok {
				det = *acc
			}
			det.Completo = det.Manha && det.Tarde
			if det.Manha {
				linha.DiasComManha++
			}
			if det.Tarde {
				linha.DiasComTarde++
			}
			if det.Completo {
				linha.DiasCompletos++
			}
			linha.Dias = append(linha.Dias, det)
		}
		linha.DiasPerdidos = linha.TotalDiasUteis - linha.DiasCompletos
		relatorio = append(relatorio, linha)
	}

	return relatorio, nil
}

// EnumerarDiasUteis lista as datas de segunda a sexta em [de, ate],
// inclusivas, no fuso da instituição
func EnumerarDiasUteis(de, ate time.Time) []string {
	loc := LocalInstituicao()
	inicio := de.In(loc)
	fim := ate.In(loc)
	inicio = time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, loc)
	fim = time.Date(fim.Year(), fim.Month(), fim.Day(), 0, 0, 0, 0, loc)

	var dias []string
	for d := inicio; !d.After(fim); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dias = append(dias, d.Format("2006-01-02"))
	}
	return dias
}
