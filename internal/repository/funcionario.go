package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type funcionarioRepository struct {
	db *gorm.DB
}

// NewFuncionarioRepository creates a GORM-backed FuncionarioRepository.
func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepository{db: db}
}

func (r *funcionarioRepository) Create(ctx context.Context, funcionario *models.Funcionario) error {
	return r.db.WithContext(ctx).Create(funcionario).Error
}

func (r *funcionarioRepository) GetByID(ctx context.Context, id string) (*models.Funcionario, error) {
	var funcionario models.Funcionario
	err := r.db.WithContext(ctx).First(&funcionario, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (r *funcionarioRepository) GetByCPF(ctx context.Context, cpf string) (*models.Funcionario, error) {
	var funcionario models.Funcionario
	err := r.db.WithContext(ctx).First(&funcionario, "cpf = ?", cpf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (r *funcionarioRepository) List(ctx context.Context, estabelecimentoID string, skip, limit int) ([]models.Funcionario, error) {
	query := r.db.WithContext(ctx).Model(&models.Funcionario{})
	if estabelecimentoID != "" {
		query = query.Where("estabelecimento_id = ?", estabelecimentoID)
	}

	var funcionarios []models.Funcionario
	err := query.Offset(skip).Limit(limit).Find(&funcionarios).Error
	return funcionarios, err
}

func (r *funcionarioRepository) Update(ctx context.Context, funcionario *models.Funcionario) error {
	return r.db.WithContext(ctx).Save(funcionario).Error
}

func (r *funcionarioRepository) ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Funcionario{}).
		Where("estabelecimento_id = ?", estabelecimentoID).
		Count(&count).Error
	return count > 0, err
}
