package services

import (
	"context"
	stderrors "errors"
	"time"

	"portalubs/constants"
	"portalubs/errors"
	"portalubs/models"

	"gorm.io/gorm"
)

// CheckStore é a porta de acesso aos registros de check e às solicitações de
// correção. Os serviços dependem só desta interface; a implementação de
// produção usa GORM e os testes usam um fake em memória.
type CheckStore interface {
	// GetUpdateCheck devolve nil, nil quando não existe registro para o dia
	GetUpdateCheck(ctx context.Context, userID, postoID uint, data string) (*models.UpdateCheck, error)
	CreateUpdateCheck(ctx context.Context, check *models.UpdateCheck) error
	SaveUpdateCheck(ctx context.Context, check *models.UpdateCheck) error
	// QueryUpdateChecks devolve os registros com data em [de, ate], ordenados
	// por data e id crescentes
	QueryUpdateChecks(ctx context.Context, de, ate string) ([]models.UpdateCheck, error)

	CreateCorrecao(ctx context.Context, correcao *models.CorrecaoPDF) error
	GetCorrecao(ctx context.Context, id uint) (*models.CorrecaoPDF, error)
	// UpdateCorrecaoStatusSePendente aplica a transição apenas se o status
	// atual ainda for pendente; devolve false quando nenhuma linha casou
	UpdateCorrecaoStatusSePendente(ctx context.Context, id uint, novoStatus string, decididoEm time.Time, decididoPor uint) (bool, error)
	ListCorrecoesPendentes(ctx context.Context) ([]models.CorrecaoPDF, error)
	ListCorrecoesAprovadas(ctx context.Context, userID uint) ([]models.CorrecaoPDF, error)

	// DeleteChecksAntesDe remove registros com data estritamente anterior à
	// data informada; usado pela limpeza periódica
	DeleteChecksAntesDe(ctx context.Context, data string) (int64, error)
}

// PostoProvider lista os postos para o relatório de histórico
type PostoProvider interface {
	ListPostos(ctx context.Context) ([]models.Posto, error)
}

// GormCheckStore implementa CheckStore e PostoProvider sobre o Postgres
type GormCheckStore struct {
	db *gorm.DB
}

func NewGormCheckStore(db *gorm.DB) *GormCheckStore {
	return &GormCheckStore{db: db}
}

func (s *GormCheckStore) GetUpdateCheck(ctx context.Context, userID, postoID uint, data string) (*models.UpdateCheck, error) {
	var check models.UpdateCheck
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND posto_id = ? AND data = ?", userID, postoID, data).
		First(&check).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao buscar check do dia", err)
	}
	return &check, nil
}

func (s *GormCheckStore) CreateUpdateCheck(ctx context.Context, check *models.UpdateCheck) error {
	if err := s.db.WithContext(ctx).Create(check).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "erro ao criar check do dia", err)
	}
	return nil
}

func (s *GormCheckStore) SaveUpdateCheck(ctx context.Context, check *models.UpdateCheck) error {
	if err := s.db.WithContext(ctx).Save(check).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "erro ao salvar check do dia", err)
	}
	return nil
}

func (s *GormCheckStore) QueryUpdateChecks(ctx context.Context, de, ate string) ([]models.UpdateCheck, error) {
	var checks []models.UpdateCheck
	err := s.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", de, ate).
		Order("data asc, id asc").
		Find(&checks).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao consultar histórico de checks", err)
	}
	return checks, nil
}

func (s *GormCheckStore) CreateCorrecao(ctx context.Context, correcao *models.CorrecaoPDF) error {
	if err := s.db.WithContext(ctx).Create(correcao).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "erro ao criar solicitação de correção", err)
	}
	return nil
}

func (s *GormCheckStore) GetCorrecao(ctx context.Context, id uint) (*models.CorrecaoPDF, error) {
	var correcao models.CorrecaoPDF
	err := s.db.WithContext(ctx).First(&correcao, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao buscar solicitação de correção", err)
	}
	return &correcao, nil
}

func (s *GormCheckStore) UpdateCorrecaoStatusSePendente(ctx context.Context, id uint, novoStatus string, decididoEm time.Time, decididoPor uint) (bool, error) {
	// UPDATE condicional: só a primeira decisão sobre a solicitação vence
	tx := s.db.WithContext(ctx).Model(&models.CorrecaoPDF{}).
		Where("id = ? AND status = ?", id, constants.CorrecaoPendente).
		Updates(map[string]interface{}{
			"status":       novoStatus,
			"decidido_em":  decididoEm,
			"decidido_por": decididoPor,
		})
	if tx.Error != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "erro ao atualizar status da correção", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (s *GormCheckStore) ListCorrecoesPendentes(ctx context.Context) ([]models.CorrecaoPDF, error) {
	var correcoes []models.CorrecaoPDF
	err := s.db.WithContext(ctx).
		Where("status = ?", constants.CorrecaoPendente).
		Order("solicitado_em asc").
		Find(&correcoes).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao listar correções pendentes", err)
	}
	return correcoes, nil
}

func (s *GormCheckStore) ListCorrecoesAprovadas(ctx context.Context, userID uint) ([]models.CorrecaoPDF, error) {
	var correcoes []models.CorrecaoPDF
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, constants.CorrecaoAprovada).
		Order("decidido_em desc").
		Find(&correcoes).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao listar correções aprovadas", err)
	}
	return correcoes, nil
}

func (s *GormCheckStore) DeleteChecksAntesDe(ctx context.Context, data string) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("data < ?", data).
		Delete(&models.UpdateCheck{})
	if tx.Error != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "erro ao limpar checks antigos", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (s *GormCheckStore) ListPostos(ctx context.Context) ([]models.Posto, error) {
	var postos []models.Posto
	if err := s.db.WithContext(ctx).Order("nome asc").Find(&postos).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao listar postos", err)
	}
	return postos, nil
}
