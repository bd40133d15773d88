package models

import (
	"time"
)

// Vacina represents a registered vaccine batch
type Vacina struct {
	BaseModel
	Nome       string    `gorm:"size:100;not null" json:"nome"`
	Fabricante string    `gorm:"size:100" json:"fabricante"`
	Lote       string    `gorm:"size:50" json:"lote"`
	Validade   time.Time `gorm:"type:date" json:"validade"`
}

// TableName overrides the default pluralization
func (Vacina) TableName() string {
	return "vacinas"
}
