package repository

import (
	"context"

	"sus-vacinacao-server/internal/models"
)

// Lookup methods return (nil, nil) when no row matches; errors are reserved
// for storage failures and domain conflicts.

// PacienteRepository persists and resolves patients.
type PacienteRepository interface {
	Create(ctx context.Context, paciente *models.Paciente) error
	GetByID(ctx context.Context, id string) (*models.Paciente, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error)
	GetBySUSNumero(ctx context.Context, susNumero string) (*models.Paciente, error)
	List(ctx context.Context, skip, limit int) ([]models.Paciente, error)
	Update(ctx context.Context, paciente *models.Paciente) error
}

// VacinaRepository persists and resolves vaccines.
type VacinaRepository interface {
	Create(ctx context.Context, vacina *models.Vacina) error
	GetByID(ctx context.Context, id string) (*models.Vacina, error)
	List(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error)
	Update(ctx context.Context, vacina *models.Vacina) error
	Delete(ctx context.Context, id string) error
}

// EstabelecimentoRepository persists and resolves health facilities.
type EstabelecimentoRepository interface {
	Create(ctx context.Context, estabelecimento *models.Estabelecimento) error
	GetByID(ctx context.Context, id string) (*models.Estabelecimento, error)
	GetByCNES(ctx context.Context, cnes string) (*models.Estabelecimento, error)
	List(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error)
	Update(ctx context.Context, estabelecimento *models.Estabelecimento) error
	Delete(ctx context.Context, id string) error
}

// FuncionarioRepository persists and resolves health workers.
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *models.Funcionario) error
	GetByID(ctx context.Context, id string) (*models.Funcionario, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Funcionario, error)
	List(ctx context.Context, estabelecimentoID string, skip, limit int) ([]models.Funcionario, error)
	Update(ctx context.Context, funcionario *models.Funcionario) error
	ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error)
}

// CarteiraRepository persists vaccination records and serves the denormalized
// projections.
type CarteiraRepository interface {
	// Registrar runs the duplicate-dose check and the insert in a single
	// transaction. Returns models.ErrDoseDuplicada when the (paciente,
	// vacina, dose) triple already exists.
	Registrar(ctx context.Context, registro *models.CarteiraVacinacao) error
	ListarCompleta(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error)
	ListarPorPaciente(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error)
	ExistePorVacina(ctx context.Context, vacinaID string) (bool, error)
	ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error)
}

// UsuarioRepository persists API users.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByUsername(ctx context.Context, username string) (*models.Usuario, error)
}
