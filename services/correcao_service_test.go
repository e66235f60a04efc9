package services

import (
	"context"
	"testing"
	"time"

	"portalubs/constants"
	"portalubs/errors"
	"portalubs/services/logger"
)

func correcaoServiceParaTeste(store *fakeStore, agora time.Time, n Notificador) *CorrecaoService {
	return NewCorrecaoService(CorrecaoServiceOptions{
		Store:       store,
		Relogio:     relogioFixo{t: agora},
		Logger:      logger.NewDefaultLogger(logger.ErrorLevel),
		Notificador: n,
	})
}

func TestSolicitarCriaPendente(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(10, 0, 0), nil)

	correcao, err := svc.Solicitar(context.Background(), 1, 10, constants.PeriodoManha)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if correcao.ID == 0 || correcao.Status != constants.CorrecaoPendente {
		t.Fatalf("solicitação mal formada: %+v", correcao)
	}
}

func TestSolicitarRejeitaPeriodoInvalido(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(10, 0, 0), nil)

	_, err := svc.Solicitar(context.Background(), 1, 10, "noite")
	if !errors.HasCode(err, errors.ErrCodeInvalidPeriod) {
		t.Fatalf("queria INVALID_PERIOD, veio %v", err)
	}
}

func TestDecidirAprovarReabreCheckDeHoje(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	checks := checkServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	ctx := context.Background()

	// dia completo para o responsável 1 no posto 10
	if _, err := checks.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("seed manhã: %v", err)
	}
	if _, err := checks.RegistrarUpload(ctx, 1, 10, horaLocal(13, 30, 0)); err != nil {
		t.Fatalf("seed tarde: %v", err)
	}

	correcao, err := svc.Solicitar(ctx, 1, 10, constants.PeriodoManha)
	if err != nil {
		t.Fatalf("solicitar: %v", err)
	}

	res, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoAprovar)
	if err != nil {
		t.Fatalf("decidir: %v", err)
	}
	if !res.OK || res.Status != constants.CorrecaoAprovada {
		t.Fatalf("resultado inesperado: %+v", res)
	}

	decidida, _ := store.GetCorrecao(ctx, correcao.ID)
	if decidida.Status != constants.CorrecaoAprovada || decidida.DecididoEm == nil || decidida.DecididoPor == nil || *decidida.DecididoPor != 99 {
		t.Errorf("metadados da decisão errados: %+v", decidida)
	}

	check, _ := store.GetUpdateCheck(ctx, 1, 10, "2025-03-10")
	if check.Manha || !check.Tarde {
		t.Errorf("só a manhã deveria ter sido reaberta: manha=%v tarde=%v", check.Manha, check.Tarde)
	}
}

func TestDecidirSegundaDecisaoFalha(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	ctx := context.Background()

	correcao, _ := svc.Solicitar(ctx, 1, 10, constants.PeriodoManha)
	if _, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoRejeitar); err != nil {
		t.Fatalf("primeira decisão: %v", err)
	}

	_, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoAprovar)
	if !errors.HasCode(err, errors.ErrCodeCorrectionNotPending) {
		t.Fatalf("queria CORRECTION_NOT_PENDING, veio %v", err)
	}

	decidida, _ := store.GetCorrecao(ctx, correcao.ID)
	if decidida.Status != constants.CorrecaoRejeitada {
		t.Errorf("status não deveria mudar após decidido: %s", decidida.Status)
	}
}

func TestDecidirRejeitarNaoMexeNoCheck(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	checks := checkServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	ctx := context.Background()

	if _, err := checks.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	correcao, _ := svc.Solicitar(ctx, 1, 10, constants.PeriodoManha)

	res, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoRejeitar)
	if err != nil || !res.OK || res.Status != constants.CorrecaoRejeitada {
		t.Fatalf("rejeição falhou: res=%+v err=%v", res, err)
	}

	check, _ := store.GetUpdateCheck(ctx, 1, 10, "2025-03-10")
	if !check.Manha {
		t.Error("rejeição não deveria reabrir o check")
	}
}

func TestDecidirAprovarSemCheckDeHoje(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	ctx := context.Background()

	correcao, _ := svc.Solicitar(ctx, 1, 10, constants.PeriodoTarde)
	res, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoAprovar)
	if err != nil {
		t.Fatalf("aprovação sem check de hoje deveria passar: %v", err)
	}
	if !res.OK || res.Status != constants.CorrecaoAprovada {
		t.Fatalf("resultado inesperado: %+v", res)
	}
}

func TestDecidirAprovacaoParcial(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	checks := checkServiceParaTeste(store, horaLocal(14, 0, 0), nil)
	ctx := context.Background()

	if _, err := checks.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	correcao, _ := svc.Solicitar(ctx, 1, 10, constants.PeriodoManha)

	store.falhaSaveCheck = true
	res, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoAprovar)
	if !errors.HasCode(err, errors.ErrCodePartialApproval) {
		t.Fatalf("queria PARTIAL_APPROVAL, veio %v", err)
	}
	if !res.OK || res.Status != constants.CorrecaoAprovada {
		t.Fatalf("status deveria permanecer aprovado: %+v", res)
	}

	decidida, _ := store.GetCorrecao(ctx, correcao.ID)
	if decidida.Status != constants.CorrecaoAprovada {
		t.Errorf("a troca de status é definitiva mesmo com falha na reabertura: %s", decidida.Status)
	}
}

func TestDecidirDecisaoInvalida(t *testing.T) {
	store := newFakeStore()
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), nil)

	_, err := svc.Decidir(context.Background(), 1, 99, "talvez")
	if !errors.HasCode(err, errors.ErrCodeInvalidDecision) {
		t.Fatalf("queria INVALID_DECISION, veio %v", err)
	}
}

func TestDecidirNotificaDecisao(t *testing.T) {
	store := newFakeStore()
	notificador := &notificadorFake{}
	svc := correcaoServiceParaTeste(store, horaLocal(14, 0, 0), notificador)
	ctx := context.Background()

	correcao, _ := svc.Solicitar(ctx, 1, 10, constants.PeriodoManha)
	if _, err := svc.Decidir(ctx, correcao.ID, 99, DecisaoRejeitar); err != nil {
		t.Fatalf("decidir: %v", err)
	}
	if len(notificador.eventos) != 1 || notificador.eventos[0] != EventoCorrecaoDecidida {
		t.Errorf("eventos publicados: %v", notificador.eventos)
	}
}
