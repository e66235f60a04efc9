package models

import (
	"time"
)

// ArquivoPDF guarda o PDF de medicações vigente de um posto (um por posto)
type ArquivoPDF struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PostoID    uint      `json:"postoId" gorm:"uniqueIndex;not null"`
	URL        string    `json:"url" gorm:"not null"`
	DataUpload time.Time `gorm:"autoCreateTime" json:"dataUpload"`
	Posto      Posto     `json:"-" gorm:"foreignKey:PostoID"`
}

func (ArquivoPDF) TableName() string {
	return "arquivos_pdf"
}
