package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
)

// VacinacaoService implements the vaccination-card write path and its
// denormalized read projections.
type VacinacaoService struct {
	pacientes        repository.PacienteRepository
	vacinas          repository.VacinaRepository
	funcionarios     repository.FuncionarioRepository
	estabelecimentos repository.EstabelecimentoRepository
	carteira         repository.CarteiraRepository
	logger           zerolog.Logger
}

// NewVacinacaoService creates a VacinacaoService.
func NewVacinacaoService(
	pacientes repository.PacienteRepository,
	vacinas repository.VacinaRepository,
	funcionarios repository.FuncionarioRepository,
	estabelecimentos repository.EstabelecimentoRepository,
	carteira repository.CarteiraRepository,
	logger zerolog.Logger,
) *VacinacaoService {
	return &VacinacaoService{
		pacientes:        pacientes,
		vacinas:          vacinas,
		funcionarios:     funcionarios,
		estabelecimentos: estabelecimentos,
		carteira:         carteira,
		logger:           logger,
	}
}

// Registrar validates and persists one vaccination record. Reference checks
// run in declaration order (paciente, vacina, funcionário, estabelecimento)
// and stop at the first missing entity so error messages are deterministic.
// The duplicate-dose check happens inside the repository transaction together
// with the insert.
func (s *VacinacaoService) Registrar(ctx context.Context, registro *models.CarteiraVacinacao) (*models.CarteiraVacinacao, error) {
	paciente, err := s.pacientes.GetByID(ctx, registro.PacienteID)
	if err != nil {
		return nil, fmt.Errorf("consultando paciente: %w", err)
	}
	if paciente == nil {
		return nil, models.ErrPacienteNaoEncontrado
	}

	vacina, err := s.vacinas.GetByID(ctx, registro.VacinaID)
	if err != nil {
		return nil, fmt.Errorf("consultando vacina: %w", err)
	}
	if vacina == nil {
		return nil, models.ErrVacinaNaoEncontrada
	}

	funcionario, err := s.funcionarios.GetByID(ctx, registro.FuncionarioID)
	if err != nil {
		return nil, fmt.Errorf("consultando funcionário: %w", err)
	}
	if funcionario == nil {
		return nil, models.ErrFuncionarioNaoEncontrado
	}

	estabelecimento, err := s.estabelecimentos.GetByID(ctx, registro.EstabelecimentoID)
	if err != nil {
		return nil, fmt.Errorf("consultando estabelecimento: %w", err)
	}
	if estabelecimento == nil {
		return nil, models.ErrEstabelecimentoNaoEncontrado
	}

	if err := s.carteira.Registrar(ctx, registro); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("vacinacao_id", registro.ID).
		Str("paciente_id", registro.PacienteID).
		Str("vacina_id", registro.VacinaID).
		Str("dose", registro.Dose).
		Msg("vacinação registrada")

	return registro, nil
}

// ListarRegistros returns the denormalized record list, optionally filtered
// by patient.
func (s *VacinacaoService) ListarRegistros(ctx context.Context, pacienteID string, skip, limit int) ([]models.CarteiraVacinacaoCompleta, error) {
	return s.carteira.ListarCompleta(ctx, pacienteID, skip, limit)
}

// CarteiraDoPaciente returns the patient together with every vaccination
// applied to them, most recent application first.
func (s *VacinacaoService) CarteiraDoPaciente(ctx context.Context, pacienteID string) (*models.CarteiraPaciente, error) {
	paciente, err := s.pacientes.GetByID(ctx, pacienteID)
	if err != nil {
		return nil, fmt.Errorf("consultando paciente: %w", err)
	}
	if paciente == nil {
		return nil, models.ErrPacienteNaoEncontrado
	}

	vacinacoes, err := s.carteira.ListarPorPaciente(ctx, pacienteID)
	if err != nil {
		return nil, fmt.Errorf("consultando carteira: %w", err)
	}

	return &models.CarteiraPaciente{
		Paciente:   *paciente,
		Vacinacoes: vacinacoes,
	}, nil
}

// RemoverVacina deletes a vaccine unless it is referenced by any vaccination
// record.
func (s *VacinacaoService) RemoverVacina(ctx context.Context, vacinaID string) error {
	vacina, err := s.vacinas.GetByID(ctx, vacinaID)
	if err != nil {
		return fmt.Errorf("consultando vacina: %w", err)
	}
	if vacina == nil {
		return models.ErrVacinaNaoEncontrada
	}

	emUso, err := s.carteira.ExistePorVacina(ctx, vacinaID)
	if err != nil {
		return fmt.Errorf("verificando uso da vacina: %w", err)
	}
	if emUso {
		return models.ErrVacinaEmUso
	}

	if err := s.vacinas.Delete(ctx, vacinaID); err != nil {
		return err
	}

	s.logger.Info().Str("vacina_id", vacinaID).Msg("vacina removida")
	return nil
}

// RemoverEstabelecimento deletes a facility unless employees or vaccination
// records still reference it.
func (s *VacinacaoService) RemoverEstabelecimento(ctx context.Context, estabelecimentoID string) error {
	estabelecimento, err := s.estabelecimentos.GetByID(ctx, estabelecimentoID)
	if err != nil {
		return fmt.Errorf("consultando estabelecimento: %w", err)
	}
	if estabelecimento == nil {
		return models.ErrEstabelecimentoNaoEncontrado
	}

	temFuncionarios, err := s.funcionarios.ExistePorEstabelecimento(ctx, estabelecimentoID)
	if err != nil {
		return fmt.Errorf("verificando funcionários: %w", err)
	}
	temVacinacoes, err := s.carteira.ExistePorEstabelecimento(ctx, estabelecimentoID)
	if err != nil {
		return fmt.Errorf("verificando vacinações: %w", err)
	}
	if temFuncionarios || temVacinacoes {
		return models.ErrEstabelecimentoEmUso
	}

	if err := s.estabelecimentos.Delete(ctx, estabelecimentoID); err != nil {
		return err
	}

	s.logger.Info().Str("estabelecimento_id", estabelecimentoID).Msg("estabelecimento removido")
	return nil
}
