package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sus-vacinacao-server/internal/models"
)

type carteiraRepository struct {
	db *gorm.DB
}

// NewCarteiraRepository creates a GORM-backed CarteiraRepository.
func NewCarteiraRepository(db *gorm.DB) CarteiraRepository {
	return &carteiraRepository{db: db}
}

// Registrar inserts a vaccination record. The duplicate check and the insert
// share one transaction, and the unique index on (paciente_id, vacina_id,
// dose) still backs them up: two concurrent registrations of the same triple
// cannot both commit.
func (r *carteiraRepository) Registrar(ctx context.Context, registro *models.CarteiraVacinacao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.CarteiraVacinacao{}).
			Where("paciente_id = ? AND vacina_id = ? AND dose = ?",
				registro.PacienteID, registro.VacinaID, registro.Dose).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrDoseDuplicada
		}

		if err := tx.Create(registro).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDoseDuplicada
			}
			return err
		}
		return nil
	})
}

// projecao builds the inner join of a vaccination record with the four
// entities it references. Records whose references were removed vanish from
// the projection, which is why deletes are guarded upstream.
func (r *carteiraRepository) projecao(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("carteira_vacinacao").
		Select(`carteira_vacinacao.*,
			pacientes.nome AS nome_paciente,
			vacinas.nome AS nome_vacina,
			estabelecimentos.nome AS nome_estabelecimento,
			estabelecimentos.tipo AS tipo_estabelecimento,
			funcionarios.nome AS nome_funcionario`).
		Joins("JOIN pacientes ON pacientes.id = carteira_vacinacao.paciente_id").
		Joins("JOIN vacinas ON vacinas.id = carteira_vacinacao.vacina_id").
		Joins("JOIN estabelecimentos ON estabelecimentos.id = carteira_vacinacao.estabelecimento_id").
		Joins("JOIN funcionarios ON funcionarios.id = carteira_vacinacao.funcionario_id")
}

func (r *carteiraRepository) ListarCompleta(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error) {
	query := r.projecao(ctx)
	if pacienteID != "" {
		query = query.Where("carteira_vacinacao.paciente_id = ?", pacienteID)
	}

	var registros []models.CarteiraVacinacaoCompleta
	err := query.Offset(skip).Limit(limit).Scan(&registros).Error
	return registros, err
}

func (r *carteiraRepository) ListarPorPaciente(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error) {
	var registros []models.CarteiraVacinacaoCompleta
	err := r.projecao(ctx).
		Where("carteira_vacinacao.paciente_id = ?", pacienteID).
		Order("carteira_vacinacao.data_aplicacao DESC").
		Scan(&registros).Error
	return registros, err
}

func (r *carteiraRepository) ExistePorVacina(ctx context.Context, vacinaID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CarteiraVacinacao{}).
		Where("vacina_id = ?", vacinaID).
		Count(&count).Error
	return count > 0, err
}

func (r *carteiraRepository) ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CarteiraVacinacao{}).
		Where("estabelecimento_id = ?", estabelecimentoID).
		Count(&count).Error
	return count > 0, err
}
