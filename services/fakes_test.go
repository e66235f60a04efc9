package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"portalubs/constants"
	"portalubs/errors"
	"portalubs/models"
)

// relogioFixo fixa o instante devolvido por Agora
type relogioFixo struct {
	t time.Time
}

func (r relogioFixo) Agora() time.Time {
	return r.t
}

// notificadorFake acumula os eventos publicados
type notificadorFake struct {
	eventos []string
}

func (n *notificadorFake) Notificar(evento string, dados interface{}) {
	n.eventos = append(n.eventos, evento)
}

// fakeStore implementa CheckStore e PostoProvider em memória
type fakeStore struct {
	checks    map[string]models.UpdateCheck
	correcoes map[uint]models.CorrecaoPDF
	postos    []models.Posto
	proximoID uint

	falhaGetCheck  bool
	falhaSaveCheck bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		checks:    make(map[string]models.UpdateCheck),
		correcoes: make(map[uint]models.CorrecaoPDF),
	}
}

func chaveCheck(userID, postoID uint, data string) string {
	return fmt.Sprintf("%d|%d|%s", userID, postoID, data)
}

func (f *fakeStore) GetUpdateCheck(ctx context.Context, userID, postoID uint, data string) (*models.UpdateCheck, error) {
	if f.falhaGetCheck {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "falha simulada", nil)
	}
	check, ok := f.checks[chaveCheck(userID, postoID, data)]
	if !ok {
		return nil, nil
	}
	copia := check
	return &copia, nil
}

func (f *fakeStore) CreateUpdateCheck(ctx context.Context, check *models.UpdateCheck) error {
	f.proximoID++
	check.ID = f.proximoID
	f.checks[chaveCheck(check.UserID, check.PostoID, check.Data)] = *check
	return nil
}

func (f *fakeStore) SaveUpdateCheck(ctx context.Context, check *models.UpdateCheck) error {
	if f.falhaSaveCheck {
		return errors.NewAppError(errors.ErrCodeDBError, "falha simulada", nil)
	}
	f.checks[chaveCheck(check.UserID, check.PostoID, check.Data)] = *check
	return nil
}

func (f *fakeStore) QueryUpdateChecks(ctx context.Context, de, ate string) ([]models.UpdateCheck, error) {
	var out []models.UpdateCheck
	for _, check := range f.checks {
		if check.Data >= de && check.Data <= ate {
			out = append(out, check)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Data != out[j].Data {
			return out[i].Data < out[j].Data
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) CreateCorrecao(ctx context.Context, correcao *models.CorrecaoPDF) error {
	f.proximoID++
	correcao.ID = f.proximoID
	f.correcoes[correcao.ID] = *correcao
	return nil
}

func (f *fakeStore) GetCorrecao(ctx context.Context, id uint) (*models.CorrecaoPDF, error) {
	correcao, ok := f.correcoes[id]
	if !ok {
		return nil, nil
	}
	copia := correcao
	return &copia, nil
}

func (f *fakeStore) UpdateCorrecaoStatusSePendente(ctx context.Context, id uint, novoStatus string, decididoEm time.Time, decididoPor uint) (bool, error) {
	correcao, ok := f.correcoes[id]
	if !ok || correcao.Status != constants.CorrecaoPendente {
		return false, nil
	}
	correcao.Status = novoStatus
	correcao.DecididoEm = &decididoEm
	correcao.DecididoPor = &decididoPor
	f.correcoes[id] = correcao
	return true, nil
}

func (f *fakeStore) ListCorrecoesPendentes(ctx context.Context) ([]models.CorrecaoPDF, error) {
	var out []models.CorrecaoPDF
	for _, correcao := range f.correcoes {
		if correcao.Status == constants.CorrecaoPendente {
			out = append(out, correcao)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListCorrecoesAprovadas(ctx context.Context, userID uint) ([]models.CorrecaoPDF, error) {
	var out []models.CorrecaoPDF
	for _, correcao := range f.correcoes {
		if correcao.UserID == userID && correcao.Status == constants.CorrecaoAprovada {
			out = append(out, correcao)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) DeleteChecksAntesDe(ctx context.Context, data string) (int64, error) {
	var removidos int64
	for chave, check := range f.checks {
		if check.Data < data {
			delete(f.checks, chave)
			removidos++
		}
	}
	return removidos, nil
}

func (f *fakeStore) ListPostos(ctx context.Context) ([]models.Posto, error) {
	return f.postos, nil
}
