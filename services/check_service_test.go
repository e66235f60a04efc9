package services

import (
	"context"
	"testing"
	"time"

	"portalubs/services/logger"
)

func checkServiceParaTeste(store *fakeStore, agora time.Time, n Notificador) *CheckService {
	return NewCheckService(CheckServiceOptions{
		Store:       store,
		Relogio:     relogioFixo{t: agora},
		Logger:      logger.NewDefaultLogger(logger.ErrorLevel),
		Notificador: n,
	})
}

func TestRegistrarUploadCriaCheckDaManha(t *testing.T) {
	store := newFakeStore()
	notificador := &notificadorFake{}
	svc := checkServiceParaTeste(store, horaLocal(9, 0, 0), notificador)

	res, err := svc.RegistrarUpload(context.Background(), 1, 10, horaLocal(9, 0, 0))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !res.Marcado || res.Periodo != "manha" || res.Motivo != MotivoCheckMarcado {
		t.Fatalf("resultado inesperado: %+v", res)
	}

	check, _ := store.GetUpdateCheck(context.Background(), 1, 10, "2025-03-10")
	if check == nil {
		t.Fatal("registro do dia não foi criado")
	}
	if !check.Manha || check.Tarde {
		t.Errorf("flags erradas: manha=%v tarde=%v", check.Manha, check.Tarde)
	}
	if len(notificador.eventos) != 1 || notificador.eventos[0] != EventoCheckMarcado {
		t.Errorf("eventos publicados: %v", notificador.eventos)
	}
}

func TestRegistrarUploadIdempotenteNoMesmoPeriodo(t *testing.T) {
	store := newFakeStore()
	svc := checkServiceParaTeste(store, horaLocal(9, 0, 0), nil)
	ctx := context.Background()

	if _, err := svc.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("primeiro upload: %v", err)
	}
	res, err := svc.RegistrarUpload(ctx, 1, 10, horaLocal(9, 30, 0))
	if err != nil {
		t.Fatalf("segundo upload: %v", err)
	}
	if res.Marcado || res.Motivo != MotivoJaMarcado {
		t.Fatalf("repetição deveria ser no-op: %+v", res)
	}
	if len(store.checks) != 1 {
		t.Errorf("deveria existir um único registro, há %d", len(store.checks))
	}
}

func TestRegistrarUploadCompletaODia(t *testing.T) {
	store := newFakeStore()
	svc := checkServiceParaTeste(store, horaLocal(9, 0, 0), nil)
	ctx := context.Background()

	if _, err := svc.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("upload da manhã: %v", err)
	}
	res, err := svc.RegistrarUpload(ctx, 1, 10, horaLocal(14, 0, 0))
	if err != nil {
		t.Fatalf("upload da tarde: %v", err)
	}
	if !res.Marcado || res.Periodo != "tarde" {
		t.Fatalf("tarde não marcada: %+v", res)
	}

	check, _ := store.GetUpdateCheck(ctx, 1, 10, "2025-03-10")
	if !check.Completo() {
		t.Errorf("dia deveria estar completo: %+v", check)
	}

	// terceiro upload na tarde não muda nada
	res, _ = svc.RegistrarUpload(ctx, 1, 10, horaLocal(15, 0, 0))
	if res.Marcado {
		t.Errorf("terceiro upload deveria ser no-op: %+v", res)
	}
}

func TestRegistrarUploadForaDaJanela(t *testing.T) {
	store := newFakeStore()
	svc := checkServiceParaTeste(store, horaLocal(12, 30, 0), nil)

	res, err := svc.RegistrarUpload(context.Background(), 1, 10, horaLocal(12, 30, 0))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if res.Marcado || res.Motivo != MotivoForaDaJanela {
		t.Fatalf("upload no almoço não deveria marcar: %+v", res)
	}
	if len(store.checks) != 0 {
		t.Errorf("nenhum registro deveria ser criado, há %d", len(store.checks))
	}
}

func TestRegistrarUploadUsaRelogioQuandoInstanteZero(t *testing.T) {
	store := newFakeStore()
	svc := checkServiceParaTeste(store, horaLocal(10, 0, 0), nil)

	res, err := svc.RegistrarUpload(context.Background(), 1, 10, time.Time{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !res.Marcado || res.Periodo != "manha" {
		t.Fatalf("instante zero deveria usar o relógio: %+v", res)
	}
}

func TestPurgarChecksAntigos(t *testing.T) {
	store := newFakeStore()
	svc := checkServiceParaTeste(store, horaLocal(10, 0, 0), nil)
	ctx := context.Background()

	antigo := horaLocal(9, 0, 0).AddDate(0, 0, -90)
	if _, err := svc.RegistrarUpload(ctx, 1, 10, antigo); err != nil {
		t.Fatalf("seed antigo: %v", err)
	}
	if _, err := svc.RegistrarUpload(ctx, 1, 10, horaLocal(9, 0, 0)); err != nil {
		t.Fatalf("seed de hoje: %v", err)
	}

	removidos, err := svc.PurgarChecksAntigos(ctx)
	if err != nil {
		t.Fatalf("purga: %v", err)
	}
	if removidos != 1 {
		t.Errorf("removidos = %d, queria 1", removidos)
	}
	if check, _ := store.GetUpdateCheck(ctx, 1, 10, "2025-03-10"); check == nil {
		t.Error("registro de hoje não deveria ser removido")
	}
}
