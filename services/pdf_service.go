package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"portalubs/errors"
	"portalubs/models"
	"portalubs/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

// PDFService substitui o PDF de medicações vigente de um posto. A troca do
// arquivo é independente da marcação de check: ela acontece mesmo fora das
// janelas.
type PDFService struct {
	db     *gorm.DB
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

type PDFServiceOptions struct {
	DB     *gorm.DB
	Cld    *cloudinary.Cloudinary
	Logger logger.Logger
}

func NewPDFService(opts PDFServiceOptions) *PDFService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PDFService{db: opts.DB, cld: opts.Cld, logger: opts.Logger}
}

// Substituir envia o novo arquivo para o Cloudinary sobrescrevendo o
// anterior do posto, troca a linha de arquivos_pdf e devolve o registro novo
// com o timestamp de upload do banco.
func (s *PDFService) Substituir(ctx context.Context, postoID uint, file multipart.File) (*models.ArquivoPDF, error) {
	// PublicID fixo por posto: o upload novo sobrescreve o antigo no storage
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    "medicacoes_ubs",
		PublicID:  fmt.Sprintf("posto_%d", postoID),
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "falha no upload do PDF", err)
	}

	// Remove o registro antigo e grava o novo com a URL pública
	if err := s.db.WithContext(ctx).Where("posto_id = ?", postoID).Delete(&models.ArquivoPDF{}).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao remover registro de PDF antigo", err)
	}

	arquivo := &models.ArquivoPDF{
		PostoID:    postoID,
		URL:        resp.SecureURL,
		DataUpload: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(arquivo).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao gravar registro de PDF", err)
	}

	s.logger.Info("PDF do posto %d substituído: %s", postoID, arquivo.URL)
	return arquivo, nil
}

// Buscar devolve o PDF vigente do posto, ou nil quando não há arquivo
func (s *PDFService) Buscar(ctx context.Context, postoID uint) (*models.ArquivoPDF, error) {
	var arquivo models.ArquivoPDF
	err := s.db.WithContext(ctx).Where("posto_id = ?", postoID).First(&arquivo).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "erro ao buscar PDF do posto", err)
	}
	return &arquivo, nil
}
