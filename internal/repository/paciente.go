package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type pacienteRepository struct {
	db *gorm.DB
}

// NewPacienteRepository creates a GORM-backed PacienteRepository.
func NewPacienteRepository(db *gorm.DB) PacienteRepository {
	return &pacienteRepository{db: db}
}

func (r *pacienteRepository) Create(ctx context.Context, paciente *models.Paciente) error {
	return r.db.WithContext(ctx).Create(paciente).Error
}

func (r *pacienteRepository) GetByID(ctx context.Context, id string) (*models.Paciente, error) {
	var paciente models.Paciente
	err := r.db.WithContext(ctx).First(&paciente, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error) {
	var paciente models.Paciente
	err := r.db.WithContext(ctx).First(&paciente, "cpf = ?", cpf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) GetBySUSNumero(ctx context.Context, susNumero string) (*models.Paciente, error) {
	var paciente models.Paciente
	err := r.db.WithContext(ctx).First(&paciente, "sus_numero = ?", susNumero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) List(ctx context.Context, skip, limit int) ([]models.Paciente, error) {
	var pacientes []models.Paciente
	err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&pacientes).Error
	return pacientes, err
}

func (r *pacienteRepository) Update(ctx context.Context, paciente *models.Paciente) error {
	return r.db.WithContext(ctx).Save(paciente).Error
}
