package models

import (
	"time"
)

// SexoPaciente is the single-letter sex code used by the national registry
type SexoPaciente string

const (
	SexoMasculino SexoPaciente = "M"
	SexoFeminino  SexoPaciente = "F"
	SexoOutro     SexoPaciente = "O"
)

// Paciente represents a patient enrolled in the health system
type Paciente struct {
	BaseModel
	Nome           string       `gorm:"size:100;not null" json:"nome"`
	CPF            string       `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	DataNascimento time.Time    `gorm:"type:date;not null" json:"data_nascimento"`
	Sexo           SexoPaciente `gorm:"size:1" json:"sexo"`
	Endereco       string       `gorm:"size:200" json:"endereco,omitempty"`
	Telefone       string       `gorm:"size:20" json:"telefone,omitempty"`
	Email          string       `gorm:"size:100" json:"email,omitempty"`
	TipoSanguineo  string       `gorm:"size:3" json:"tipo_sanguineo,omitempty"`
	SUSNumero      string       `gorm:"column:sus_numero;size:20;uniqueIndex;not null" json:"sus_numero"`
}

// TableName overrides the default pluralization
func (Paciente) TableName() string {
	return "pacientes"
}
