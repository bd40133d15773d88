package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"data_cadastro"`
	UpdatedAt time.Time `json:"ultima_atualizacao"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// RegistroBase is the base for append-only tables: rows are never updated, so
// there is no ultima_atualizacao column.
type RegistroBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"data_cadastro"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *RegistroBase) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// InitDB initializes database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN), &gorm.Config{
		// Translated errors let callers match gorm.ErrDuplicatedKey on
		// unique-index violations instead of inspecting pg error codes.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the database models
	err = db.AutoMigrate(
		&Usuario{},
		&Paciente{},
		&Vacina{},
		&Estabelecimento{},
		&Funcionario{},
		&CarteiraVacinacao{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}
