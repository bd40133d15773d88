package services

import (
	"context"
	"errors"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
)

// Compile-time checks that the mocks implement the repository contracts.
var (
	_ repository.PacienteRepository        = (*MockPacienteRepository)(nil)
	_ repository.VacinaRepository          = (*MockVacinaRepository)(nil)
	_ repository.FuncionarioRepository     = (*MockFuncionarioRepository)(nil)
	_ repository.EstabelecimentoRepository = (*MockEstabelecimentoRepository)(nil)
	_ repository.CarteiraRepository        = (*MockCarteiraRepository)(nil)
)

// MockPacienteRepository is a mock implementation of PacienteRepository.
type MockPacienteRepository struct {
	CreateFunc         func(ctx context.Context, paciente *models.Paciente) error
	GetByIDFunc        func(ctx context.Context, id string) (*models.Paciente, error)
	GetByCPFFunc       func(ctx context.Context, cpf string) (*models.Paciente, error)
	GetBySUSNumeroFunc func(ctx context.Context, susNumero string) (*models.Paciente, error)
	ListFunc           func(ctx context.Context, skip, limit int) ([]models.Paciente, error)
	UpdateFunc         func(ctx context.Context, paciente *models.Paciente) error
}

func (m *MockPacienteRepository) Create(ctx context.Context, paciente *models.Paciente) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, paciente)
	}
	return nil
}

func (m *MockPacienteRepository) GetByID(ctx context.Context, id string) (*models.Paciente, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPacienteRepository) GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error) {
	if m.GetByCPFFunc != nil {
		return m.GetByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockPacienteRepository) GetBySUSNumero(ctx context.Context, susNumero string) (*models.Paciente, error) {
	if m.GetBySUSNumeroFunc != nil {
		return m.GetBySUSNumeroFunc(ctx, susNumero)
	}
	return nil, nil
}

func (m *MockPacienteRepository) List(ctx context.Context, skip, limit int) ([]models.Paciente, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (m *MockPacienteRepository) Update(ctx context.Context, paciente *models.Paciente) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, paciente)
	}
	return nil
}

// MockVacinaRepository is a mock implementation of VacinaRepository.
type MockVacinaRepository struct {
	CreateFunc  func(ctx context.Context, vacina *models.Vacina) error
	GetByIDFunc func(ctx context.Context, id string) (*models.Vacina, error)
	ListFunc    func(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error)
	UpdateFunc  func(ctx context.Context, vacina *models.Vacina) error
	DeleteFunc  func(ctx context.Context, id string) error

	DeleteCallCount int
}

func (m *MockVacinaRepository) Create(ctx context.Context, vacina *models.Vacina) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vacina)
	}
	return nil
}

func (m *MockVacinaRepository) GetByID(ctx context.Context, id string) (*models.Vacina, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockVacinaRepository) List(ctx context.Context, nome, fabricante string, skip, limit int) ([]models.Vacina, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, nome, fabricante, skip, limit)
	}
	return nil, nil
}

func (m *MockVacinaRepository) Update(ctx context.Context, vacina *models.Vacina) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vacina)
	}
	return nil
}

func (m *MockVacinaRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCallCount++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockFuncionarioRepository is a mock implementation of FuncionarioRepository.
type MockFuncionarioRepository struct {
	CreateFunc                   func(ctx context.Context, funcionario *models.Funcionario) error
	GetByIDFunc                  func(ctx context.Context, id string) (*models.Funcionario, error)
	GetByCPFFunc                 func(ctx context.Context, cpf string) (*models.Funcionario, error)
	ListFunc                     func(ctx context.Context, estabelecimentoID string, skip, limit int) ([]models.Funcionario, error)
	UpdateFunc                   func(ctx context.Context, funcionario *models.Funcionario) error
	ExistePorEstabelecimentoFunc func(ctx context.Context, estabelecimentoID string) (bool, error)
}

func (m *MockFuncionarioRepository) Create(ctx context.Context, funcionario *models.Funcionario) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, funcionario)
	}
	return nil
}

func (m *MockFuncionarioRepository) GetByID(ctx context.Context, id string) (*models.Funcionario, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockFuncionarioRepository) GetByCPF(ctx context.Context, cpf string) (*models.Funcionario, error) {
	if m.GetByCPFFunc != nil {
		return m.GetByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockFuncionarioRepository) List(ctx context.Context, estabelecimentoID string, skip, limit int) ([]models.Funcionario, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, estabelecimentoID, skip, limit)
	}
	return nil, nil
}

func (m *MockFuncionarioRepository) Update(ctx context.Context, funcionario *models.Funcionario) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, funcionario)
	}
	return nil
}

func (m *MockFuncionarioRepository) ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error) {
	if m.ExistePorEstabelecimentoFunc != nil {
		return m.ExistePorEstabelecimentoFunc(ctx, estabelecimentoID)
	}
	return false, nil
}

// MockEstabelecimentoRepository is a mock implementation of
// EstabelecimentoRepository.
type MockEstabelecimentoRepository struct {
	CreateFunc    func(ctx context.Context, estabelecimento *models.Estabelecimento) error
	GetByIDFunc   func(ctx context.Context, id string) (*models.Estabelecimento, error)
	GetByCNESFunc func(ctx context.Context, cnes string) (*models.Estabelecimento, error)
	ListFunc      func(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error)
	UpdateFunc    func(ctx context.Context, estabelecimento *models.Estabelecimento) error
	DeleteFunc    func(ctx context.Context, id string) error

	DeleteCallCount int
}

func (m *MockEstabelecimentoRepository) Create(ctx context.Context, estabelecimento *models.Estabelecimento) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, estabelecimento)
	}
	return nil
}

func (m *MockEstabelecimentoRepository) GetByID(ctx context.Context, id string) (*models.Estabelecimento, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockEstabelecimentoRepository) GetByCNES(ctx context.Context, cnes string) (*models.Estabelecimento, error) {
	if m.GetByCNESFunc != nil {
		return m.GetByCNESFunc(ctx, cnes)
	}
	return nil, nil
}

func (m *MockEstabelecimentoRepository) List(ctx context.Context, tipo string, skip, limit int) ([]models.Estabelecimento, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tipo, skip, limit)
	}
	return nil, nil
}

func (m *MockEstabelecimentoRepository) Update(ctx context.Context, estabelecimento *models.Estabelecimento) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, estabelecimento)
	}
	return nil
}

func (m *MockEstabelecimentoRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCallCount++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCarteiraRepository is a mock implementation of CarteiraRepository.
type MockCarteiraRepository struct {
	RegistrarFunc                func(ctx context.Context, registro *models.CarteiraVacinacao) error
	ListarCompletaFunc           func(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error)
	ListarPorPacienteFunc        func(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error)
	ExistePorVacinaFunc          func(ctx context.Context, vacinaID string) (bool, error)
	ExistePorEstabelecimentoFunc func(ctx context.Context, estabelecimentoID string) (bool, error)

	RegistrarCallCount int
}

func (m *MockCarteiraRepository) Registrar(ctx context.Context, registro *models.CarteiraVacinacao) error {
	m.RegistrarCallCount++
	if m.RegistrarFunc != nil {
		return m.RegistrarFunc(ctx, registro)
	}
	return nil
}

func (m *MockCarteiraRepository) ListarCompleta(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error) {
	if m.ListarCompletaFunc != nil {
		return m.ListarCompletaFunc(ctx, pacienteID, skip, limit)
	}
	return nil, nil
}

func (m *MockCarteiraRepository) ListarPorPaciente(ctx context.Context, pacienteID string) ([]models.CarteiraVacinacaoCompleta, error) {
	if m.ListarPorPacienteFunc != nil {
		return m.ListarPorPacienteFunc(ctx, pacienteID)
	}
	return nil, nil
}

func (m *MockCarteiraRepository) ExistePorVacina(ctx context.Context, vacinaID string) (bool, error) {
	if m.ExistePorVacinaFunc != nil {
		return m.ExistePorVacinaFunc(ctx, vacinaID)
	}
	return false, nil
}

func (m *MockCarteiraRepository) ExistePorEstabelecimento(ctx context.Context, estabelecimentoID string) (bool, error) {
	if m.ExistePorEstabelecimentoFunc != nil {
		return m.ExistePorEstabelecimentoFunc(ctx, estabelecimentoID)
	}
	return false, nil
}
