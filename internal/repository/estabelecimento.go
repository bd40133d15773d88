package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type estabelecimentoRepository struct {
	db *gorm.DB
}

// NewEstabelecimentoRepository creates a GORM-backed EstabelecimentoRepository.
func NewEstabelecimentoRepository(db *gorm.DB) EstabelecimentoRepository {
	return &estabelecimentoRepository{db: db}
}

func (r *estabelecimentoRepository) Create(ctx context.Context, estabelecimento *models.Estabelecimento) error {
	return r.db.WithContext(ctx).Create(estabelecimento).Error
}

func (r *estabelecimentoRepository) GetByID(ctx context.Context, id string) (*models.Estabelecimento, error) {
	var estabelecimento models.Estabelecimento
	err := r.db.WithContext(ctx).First(&estabelecimento, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &estabelecimento, nil
}

func (r *estabelecimentoRepository) GetByCNES(ctx context.Context, cnes string) (*models.Estabelecimento, error) {
	var estabelecimento models.Estabelecimento
	err := r.db.WithContext(ctx).First(&estabelecimento, "cnes = ?", cnes).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &estabelecimento, nil
}

func (r *estabelecimentoRepository) List(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error) {
	query := r.db.WithContext(ctx).Model(&models.Estabelecimento{})
	if tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	var estabelecimentos []models.Estabelecimento
	err := query.Offset(skip).Limit(limit).Find(&estabelecimentos).Error
	return estabelecimentos, err
}

func (r *estabelecimentoRepository) Update(ctx context.Context, estabelecimento *models.Estabelecimento) error {
	return r.db.WithContext(ctx).Save(estabelecimento).Error
}

func (r *estabelecimentoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Estabelecimento{}, "id = ?", id).Error
}
