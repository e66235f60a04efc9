package models

// UsuarioPosto é a tabela de junção N:M entre usuários responsáveis e postos
type UsuarioPosto struct {
	UserID  uint `gorm:"primaryKey" json:"userId"`
	PostoID uint `gorm:"primaryKey" json:"postoId"`
}

func (UsuarioPosto) TableName() string {
	return "usuario_posto"
}
