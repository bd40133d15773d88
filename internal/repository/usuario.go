package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a GORM-backed UsuarioRepository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) GetByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).First(&usuario, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
