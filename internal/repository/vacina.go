package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type vacinaRepository struct {
	db *gorm.DB
}

// NewVacinaRepository creates a GORM-backed VacinaRepository.
func NewVacinaRepository(db *gorm.DB) VacinaRepository {
	return &vacinaRepository{db: db}
}

func (r *vacinaRepository) Create(ctx context.Context, vacina *models.Vacina) error {
	return r.db.WithContext(ctx).Create(vacina).Error
}

func (r *vacinaRepository) GetByID(ctx context.Context, id string) (*models.Vacina, error) {
	var vacina models.Vacina
	err := r.db.WithContext(ctx).First(&vacina, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vacina, nil
}

func (r *vacinaRepository) List(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error) {
	query := r.db.WithContext(ctx).Model(&models.Vacina{})
	if nome != "" {
		query = query.Where("nome ILIKE ?", "%"+nome+"%")
	}
	if fabricante != "" {
		query = query.Where("fabricante ILIKE ?", "%"+fabricante+"%")
	}

	var vacinas []models.Vacina
	err := query.Offset(skip).Limit(limit).Find(&vacinas).Error
	return vacinas, err
}

func (r *vacinaRepository) Update(ctx context.Context, vacina *models.Vacina) error {
	return r.db.WithContext(ctx).Save(vacina).Error
}

func (r *vacinaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Vacina{}, "id = ?", id).Error
}
