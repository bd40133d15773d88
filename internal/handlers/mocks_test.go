package handlers

import (
	"context"
	"errors"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
)

// Compile-time checks that the mocks implement the repository contracts.
var (
	_ repository.PacienteRepository        = (*mockPacienteRepo)(nil)
	_ repository.VacinaRepository          = (*mockVacinaRepo)(nil)
	_ repository.FuncionarioRepository     = (*mockFuncionarioRepo)(nil)
	_ repository.EstabelecimentoRepository = (*mockEstabelecimentoRepo)(nil)
	_ repository.CarteiraRepository        = (*mockCarteiraRepo)(nil)
)

type mockPacienteRepo struct {
	CreateFunc         func(ctx context.Context, p *models.Paciente) error
	GetByIDFunc        func(ctx context.Context, id string) (*models.Paciente, error)
	GetByCPFFunc       func(ctx context.Context, cpf string) (*models.Paciente, error)
	GetBySUSNumeroFunc func(ctx context.Context, sus string) (*models.Paciente, error)
}

func (m *mockPacienteRepo) Create(ctx context.Context, p *models.Paciente) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}
func (m *mockPacienteRepo) GetByID(ctx context.Context, id string) (*models.Paciente, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}
func (m *mockPacienteRepo) GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error) {
	if m.GetByCPFFunc != nil {
		return m.GetByCPFFunc(ctx, cpf)
	}
	return nil, nil
}
func (m *mockPacienteRepo) GetBySUSNumero(ctx context.Context, sus string) (*models.Paciente, error) {
	if m.GetBySUSNumeroFunc != nil {
		return m.GetBySUSNumeroFunc(ctx, sus)
	}
	return nil, nil
}
func (m *mockPacienteRepo) List(ctx context.Context, skip, limit int) ([]models.Paciente, error) {
	return nil, nil
}
func (m *mockPacienteRepo) Update(ctx context.Context, p *models.Paciente) error { return nil }

type mockVacinaRepo struct {
	CreateFunc  func(ctx context.Context, v *models.Vacina) error
	GetByIDFunc func(ctx context.Context, id string) (*models.Vacina, error)
	ListFunc    func(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error)
	UpdateFunc  func(ctx context.Context, v *models.Vacina) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockVacinaRepo) Create(ctx context.Context, v *models.Vacina) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}
func (m *mockVacinaRepo) GetByID(ctx context.Context, id string) (*models.Vacina, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}
func (m *mockVacinaRepo) List(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, nome, fabricante, skip, limit)
	}
	return nil, nil
}
func (m *mockVacinaRepo) Update(ctx context.Context, v *models.Vacina) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}
func (m *mockVacinaRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockFuncionarioRepo struct {
	CreateFunc                   func(ctx context.Context, f *models.Funcionario) error
	GetByIDFunc                  func(ctx context.Context, id string) (*models.Funcionario, error)
	GetByCPFFunc                 func(ctx context.Context, cpf string) (*models.Funcionario, error)
	ListFunc                     func(ctx context.Context, estID string, skip, limit int) ([]models.Funcionario, error)
	UpdateFunc                   func(ctx context.Context, f *models.Funcionario) error
	ExistePorEstabelecimentoFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockFuncionarioRepo) Create(ctx context.Context, f *models.Funcionario) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}
func (m *mockFuncionarioRepo) GetByID(ctx context.Context, id string) (*models.Funcionario, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}
func (m *mockFuncionarioRepo) GetByCPF(ctx context.Context, cpf string) (*models.Funcionario, error) {
	if m.GetByCPFFunc != nil {
		return m.GetByCPFFunc(ctx, cpf)
	}
	return nil, nil
}
func (m *mockFuncionarioRepo) List(ctx context.Context, estID string, skip, limit int) ([]models.Funcionario, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, estID, skip, limit)
	}
	return nil, nil
}
func (m *mockFuncionarioRepo) Update(ctx context.Context, f *models.Funcionario) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}
func (m *mockFuncionarioRepo) ExistePorEstabelecimento(ctx context.Context, id string) (bool, error) {
	if m.ExistePorEstabelecimentoFunc != nil {
		return m.ExistePorEstabelecimentoFunc(ctx, id)
	}
	return false, nil
}

type mockEstabelecimentoRepo struct {
	GetByIDFunc   func(ctx context.Context, id string) (*models.Estabelecimento, error)
	GetByCNESFunc func(ctx context.Context, cnes string) (*models.Estabelecimento, error)
	ListFunc      func(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error)
	UpdateFunc    func(ctx context.Context, e *models.Estabelecimento) error
	DeleteFunc    func(ctx context.Context, id string) error
}

func (m *mockEstabelecimentoRepo) Create(ctx context.Context, e *models.Estabelecimento) error {
	return nil
}
func (m *mockEstabelecimentoRepo) GetByID(ctx context.Context, id string) (*models.Estabelecimento, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}
func (m *mockEstabelecimentoRepo) GetByCNES(ctx context.Context, cnes string) (*models.Estabelecimento, error) {
	if m.GetByCNESFunc != nil {
		return m.GetByCNESFunc(ctx, cnes)
	}
	return nil, nil
}
func (m *mockEstabelecimentoRepo) List(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tipo, skip, limit)
	}
	return nil, nil
}
func (m *mockEstabelecimentoRepo) Update(ctx context.Context, e *models.Estabelecimento) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}
func (m *mockEstabelecimentoRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockCarteiraRepo struct {
	RegistrarFunc                func(ctx context.Context, r *models.CarteiraVacinacao) error
	ListarPorPacienteFunc        func(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error)
	ExistePorVacinaFunc          func(ctx context.Context, vacinaID string) (bool, error)
	ExistePorEstabelecimentoFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockCarteiraRepo) Registrar(ctx context.Context, r *models.CarteiraVacinacao) error {
	if m.RegistrarFunc != nil {
		return m.RegistrarFunc(ctx, r)
	}
	return nil
}
func (m *mockCarteiraRepo) ListarCompleta(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error) {
	return nil, nil
}
func (m *mockCarteiraRepo) ListarPorPaciente(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error) {
	if m.ListarPorPacienteFunc != nil {
		return m.ListarPorPacienteFunc(ctx, pacienteID)
	}
	return nil, nil
}
func (m *mockCarteiraRepo) ExistePorVacina(ctx context.Context, vacinaID string) (bool, error) {
	if m.ExistePorVacinaFunc != nil {
		return m.ExistePorVacinaFunc(ctx, vacinaID)
	}
	return false, nil
}
func (m *mockCarteiraRepo) ExistePorEstabelecimento(ctx context.Context, id string) (bool, error) {
	if m.ExistePorEstabelecimentoFunc != nil {
		return m.ExistePorEstabelecimentoFunc(ctx, id)
	}
	return false, nil
}
