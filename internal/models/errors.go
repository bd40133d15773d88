package models

import "errors"

// Domain errors shared by repositories, services and handlers. Handlers map
// them onto HTTP statuses; everything else stays a 500.
var (
	ErrPacienteNaoEncontrado        = errors.New("paciente não encontrado")
	ErrVacinaNaoEncontrada          = errors.New("vacina não encontrada")
	ErrFuncionarioNaoEncontrado     = errors.New("funcionário não encontrado")
	ErrEstabelecimentoNaoEncontrado = errors.New("estabelecimento não encontrado")

	ErrDoseDuplicada        = errors.New("paciente já recebeu esta dose desta vacina")
	ErrVacinaEmUso          = errors.New("vacina utilizada em registros de vacinação")
	ErrEstabelecimentoEmUso = errors.New("estabelecimento possui funcionários ou vacinações vinculadas")

	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)
