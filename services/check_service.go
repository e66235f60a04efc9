package services

import (
	"context"
	"time"

	"portalubs/constants"
	"portalubs/dto"
	"portalubs/models"
	"portalubs/services/logger"
)

// Motivos retornados pelo registro de upload
const (
	MotivoCheckMarcado = "check marcado"
	MotivoJaMarcado    = "já marcado, sem alteração"
	MotivoForaDaJanela = "fora da janela de check"
)

// Notificador publica eventos de invalidação para os clientes conectados.
// A lógica de decisão não depende dele: com Notificador nil o sistema
// funciona só por polling.
type Notificador interface {
	Notificar(evento string, dados interface{})
}

// Eventos publicados no canal de invalidação
const (
	EventoCheckMarcado     = "check_marcado"
	EventoCorrecaoDecidida = "correcao_decidida"
)

// CheckService decide, a cada upload bem-sucedido, se o check do dia deve
// ser criado ou atualizado. A substituição do arquivo em si nunca é
// bloqueada pela janela; só a marcação do check é.
type CheckService struct {
	store       CheckStore
	relogio     Relogio
	logger      logger.Logger
	notificador Notificador
}

type CheckServiceOptions struct {
	Store       CheckStore
	Relogio     Relogio
	Logger      logger.Logger
	Notificador Notificador
}

func NewCheckService(opts CheckServiceOptions) *CheckService {
	if opts.Relogio == nil {
		opts.Relogio = NewRelogioSistema()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CheckService{
		store:       opts.Store,
		relogio:     opts.Relogio,
		logger:      opts.Logger,
		notificador: opts.Notificador,
	}
}

// RegistrarUpload aplica as regras do check diário para um upload feito por
// (userID, postoID) no instante quando. Fora das janelas nada é alterado;
// dentro da janela o flag do período vira true no máximo uma vez por dia.
func (s *CheckService) RegistrarUpload(ctx context.Context, userID, postoID uint, quando time.Time) (dto.ResultadoCheck, error) {
	if quando.IsZero() {
		quando = s.relogio.Agora()
	}

	periodo := ClassificarPeriodo(quando)
	if periodo == "" {
		s.logger.Debug("upload fora da janela de check: user=%d posto=%d em %s", userID, postoID, quando)
		return dto.ResultadoCheck{Marcado: false, Periodo: "", Motivo: MotivoForaDaJanela}, nil
	}

	data := DataLocal(quando)

	check, err := s.store.GetUpdateCheck(ctx, userID, postoID, data)
	if err != nil {
		return dto.ResultadoCheck{}, err
	}

	if check == nil {
		check = &models.UpdateCheck{
			UserID:  userID,
			PostoID: postoID,
			Data:    data,
			Manha:   periodo == constants.PeriodoManha,
			Tarde:   periodo == constants.PeriodoTarde,
		}
		if err := s.store.CreateUpdateCheck(ctx, check); err != nil {
			return dto.ResultadoCheck{}, err
		}
		s.notificarCheck(userID, postoID, periodo, data)
		return dto.ResultadoCheck{Marcado: true, Periodo: periodo, Motivo: MotivoCheckMarcado}, nil
	}

	jaMarcado := (periodo == constants.PeriodoManha && check.Manha) ||
		(periodo == constants.PeriodoTarde && check.Tarde)
	if jaMarcado {
		return dto.ResultadoCheck{Marcado: false, Periodo: periodo, Motivo: MotivoJaMarcado}, nil
	}

	if periodo == constants.PeriodoManha {
		check.Manha = true
	} else {
		check.Tarde = true
	}
	if err := s.store.SaveUpdateCheck(ctx, check); err != nil {
		return dto.ResultadoCheck{}, err
	}

	s.notificarCheck(userID, postoID, periodo, data)
	return dto.ResultadoCheck{Marcado: true, Periodo: periodo, Motivo: MotivoCheckMarcado}, nil
}

// ChecksDeHoje devolve o registro do dia corrente para (userID, postoID),
// ou nil quando ainda não houve check hoje
func (s *CheckService) ChecksDeHoje(ctx context.Context, userID, postoID uint) (*models.UpdateCheck, error) {
	hoje := DataLocal(s.relogio.Agora())
	return s.store.GetUpdateCheck(ctx, userID, postoID, hoje)
}

// PurgarChecksAntigos remove os registros fora da janela de retenção. O
// corte é estritamente anterior a hoje, então nunca toca registro em uso.
func (s *CheckService) PurgarChecksAntigos(ctx context.Context) (int64, error) {
	corte := DataLocal(s.relogio.Agora().AddDate(0, 0, -constants.RetencaoChecksDias))
	removidos, err := s.store.DeleteChecksAntesDe(ctx, corte)
	if err != nil {
		return 0, err
	}
	if removidos > 0 {
		s.logger.Info("limpeza de checks: %d registros anteriores a %s removidos", removidos, corte)
	}
	return removidos, nil
}

func (s *CheckService) notificarCheck(userID, postoID uint, periodo, data string) {
	if s.notificador == nil {
		return
	}
	s.notificador.Notificar(EventoCheckMarcado, dto.EventoCheck{
		UserID:  userID,
		PostoID: postoID,
		Periodo: periodo,
		Data:    data,
	})
}
