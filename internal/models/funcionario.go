package models

import (
	"time"
)

// Funcionario represents a health worker attached to exactly one facility
type Funcionario struct {
	BaseModel
	EstabelecimentoID    string    `gorm:"size:36;not null;index" json:"estabelecimento_id"`
	Nome                 string    `gorm:"size:100;not null" json:"nome"`
	CPF                  string    `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	Cargo                string    `gorm:"size:50;not null" json:"cargo"`
	RegistroProfissional string    `gorm:"size:20" json:"registro_profissional,omitempty"`
	DataContratacao      time.Time `gorm:"type:date;not null" json:"data_contratacao"`
	Telefone             string    `gorm:"size:20" json:"telefone,omitempty"`
	Email                string    `gorm:"size:100" json:"email,omitempty"`
	Ativo                bool      `gorm:"default:true" json:"ativo"`
}

// TableName overrides the default pluralization
func (Funcionario) TableName() string {
	return "funcionarios"
}
