package services

import (
	"context"
	"fmt"
	"time"

	"portalubs/constants"
	"portalubs/dto"
	"portalubs/errors"
	"portalubs/models"
	"portalubs/services/logger"
)

// Decisões aceitas pelo fluxo de correção
const (
	DecisaoAprovar  = "aprovar"
	DecisaoRejeitar = "rejeitar"
)

// CorrecaoService implementa o fluxo de correção de checks: um responsável
// solicita a reabertura de um período marcado por engano e um admin aprova
// ou rejeita. Estados terminais são definitivos.
type CorrecaoService struct {
	store       CheckStore
	relogio     Relogio
	logger      logger.Logger
	notificador Notificador
}

type CorrecaoServiceOptions struct {
	Store       CheckStore
	Relogio     Relogio
	Logger      logger.Logger
	Notificador Notificador
}

func NewCorrecaoService(opts CorrecaoServiceOptions) *CorrecaoService {
	if opts.Relogio == nil {
		opts.Relogio = NewRelogioSistema()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CorrecaoService{
		store:       opts.Store,
		relogio:     opts.Relogio,
		logger:      opts.Logger,
		notificador: opts.Notificador,
	}
}

// Solicitar cria uma solicitação pendente. Não valida se existe check a
// corrigir nem deduplica pendentes para o mesmo (usuário, posto, período);
// a solicitação é só uma declaração de intenção.
func (s *CorrecaoService) Solicitar(ctx context.Context, userID, postoID uint, periodo string) (*models.CorrecaoPDF, error) {
	if periodo != constants.PeriodoManha && periodo != constants.PeriodoTarde {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPeriod,
			fmt.Sprintf("período inválido: %s", periodo), nil)
	}

	correcao := &models.CorrecaoPDF{
		UserID:  userID,
		PostoID: postoID,
		Periodo: periodo,
		Status:  constants.CorrecaoPendente,
	}
	if err := s.store.CreateCorrecao(ctx, correcao); err != nil {
		return nil, err
	}
	return correcao, nil
}

// ListarPendentes devolve as solicitações aguardando decisão, mais antigas
// primeiro
func (s *CorrecaoService) ListarPendentes(ctx context.Context) ([]models.CorrecaoPDF, error) {
	return s.store.ListCorrecoesPendentes(ctx)
}

// ListarAprovadasDoUsuario alimenta o aviso "sua correção foi aprovada"
func (s *CorrecaoService) ListarAprovadasDoUsuario(ctx context.Context, userID uint) ([]models.CorrecaoPDF, error) {
	return s.store.ListCorrecoesAprovadas(ctx, userID)
}

// Decidir aplica a decisão do admin sobre uma solicitação pendente. Apenas a
// primeira decisão vence: a transição é um UPDATE condicionado ao status
// pendente. Na aprovação, o check de HOJE (data da decisão, não da
// solicitação) tem o flag do período reaberto; se a reabertura falhar depois
// da troca de status, a solicitação permanece aprovada e o erro volta com o
// código PARTIAL_APPROVAL para remediação manual.
func (s *CorrecaoService) Decidir(ctx context.Context, correcaoID, adminID uint, decisao string) (dto.ResultadoDecisao, error) {
	var novoStatus string
	switch decisao {
	case DecisaoAprovar:
		novoStatus = constants.CorrecaoAprovada
	case DecisaoRejeitar:
		novoStatus = constants.CorrecaoRejeitada
	default:
		return dto.ResultadoDecisao{}, errors.NewAppError(errors.ErrCodeInvalidDecision,
			fmt.Sprintf("decisão inválida: %s", decisao), nil)
	}

	agora := s.relogio.Agora()

	aplicou, err := s.store.UpdateCorrecaoStatusSePendente(ctx, correcaoID, novoStatus, agora, adminID)
	if err != nil {
		return dto.ResultadoDecisao{}, err
	}
	if !aplicou {
		return dto.ResultadoDecisao{}, errors.NewAppError(errors.ErrCodeCorrectionNotPending,
			"solicitação inexistente ou já decidida", nil)
	}

	s.notificarDecisao(correcaoID, novoStatus)

	if novoStatus == constants.CorrecaoRejeitada {
		return dto.ResultadoDecisao{OK: true, Status: novoStatus}, nil
	}

	// Reabre o período no check de hoje. A partir daqui o status já é
	// definitivo: falhas não são revertidas, são sinalizadas.
	if err := s.reabrirCheckDeHoje(ctx, correcaoID, agora); err != nil {
		s.logger.Error("aprovação %d: status trocado mas reabertura falhou: %v", correcaoID, err)
		return dto.ResultadoDecisao{OK: true, Status: novoStatus},
			errors.NewAppError(errors.ErrCodePartialApproval,
				"correção aprovada, mas o check de hoje não pôde ser reaberto; reabra manualmente", err)
	}

	return dto.ResultadoDecisao{OK: true, Status: novoStatus}, nil
}

func (s *CorrecaoService) reabrirCheckDeHoje(ctx context.Context, correcaoID uint, agora time.Time) error {
	correcao, err := s.store.GetCorrecao(ctx, correcaoID)
	if err != nil {
		return err
	}
	if correcao == nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "solicitação sumiu após a decisão", nil)
	}

	hoje := DataLocal(agora)
	check, err := s.store.GetUpdateCheck(ctx, correcao.UserID, correcao.PostoID, hoje)
	if err != nil {
		return err
	}
	if check == nil {
		// Sem check hoje não há o que reabrir; a aprovação vale mesmo assim
		return nil
	}

	if correcao.Periodo == constants.PeriodoManha {
		check.Manha = false
	} else {
		check.Tarde = false
	}
	return s.store.SaveUpdateCheck(ctx, check)
}

func (s *CorrecaoService) notificarDecisao(correcaoID uint, status string) {
	if s.notificador == nil {
		return
	}
	s.notificador.Notificar(EventoCorrecaoDecidida, dto.EventoCorrecao{
		CorrecaoID: correcaoID,
		Status:     status,
	})
}
