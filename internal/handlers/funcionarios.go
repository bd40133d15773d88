package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/utils"
)

// FuncionarioHandler handles health-worker requests. Employees are never
// deleted; they are deactivated through the ativo flag instead.
type FuncionarioHandler struct {
	Funcionarios     repository.FuncionarioRepository
	Estabelecimentos repository.EstabelecimentoRepository
}

// NewFuncionarioHandler creates a new FuncionarioHandler.
func NewFuncionarioHandler(
	funcionarios repository.FuncionarioRepository,
	estabelecimentos repository.EstabelecimentoRepository,
) *FuncionarioHandler {
	return &FuncionarioHandler{Funcionarios: funcionarios, Estabelecimentos: estabelecimentos}
}

// ListarFuncionarios lists employees, optionally filtered by facility.
func (h *FuncionarioHandler) ListarFuncionarios(c *gin.Context) {
	skip, limit := utils.Pagination(c)
	estabelecimentoID := c.Query("estabelecimento_id")

	funcionarios, err := h.Funcionarios.List(c.Request.Context(), estabelecimentoID, skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar funcionários: "+err.Error())
		return
	}

	utils.Success(c, "Funcionários listados com sucesso", funcionarios)
}

// ObterFuncionario fetches one employee by id.
func (h *FuncionarioHandler) ObterFuncionario(c *gin.Context) {
	funcionario, err := h.Funcionarios.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar funcionário: "+err.Error())
		return
	}
	if funcionario == nil {
		utils.NotFound(c, "Funcionário não encontrado")
		return
	}
	utils.Success(c, "Funcionário encontrado", funcionario)
}

// CriarFuncionarioRequest represents the request body for hiring an employee.
type CriarFuncionarioRequest struct {
	EstabelecimentoID    string `json:"estabelecimento_id" binding:"required,uuid"`
	Nome                 string `json:"nome" binding:"required,min=2,max=100"`
	CPF                  string `json:"cpf" binding:"required,min=11,max=14"`
	Cargo                string `json:"cargo" binding:"required,max=50"`
	RegistroProfissional string `json:"registro_profissional" binding:"max=20"`
	DataContratacao      string `json:"data_contratacao" binding:"required"`
	Telefone             string `json:"telefone" binding:"max=20"`
	Email                string `json:"email" binding:"omitempty,email"`
}

// CriarFuncionario registers a new employee at an existing facility.
func (h *FuncionarioHandler) CriarFuncionario(c *gin.Context) {
	var req CriarFuncionarioRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := utils.ValidarCPF(req.CPF); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	dataContratacao, err := time.Parse(dateLayout, req.DataContratacao)
	if err != nil {
		utils.BadRequest(c, "Data de contratação inválida, use o formato AAAA-MM-DD")
		return
	}

	ctx := c.Request.Context()
	estabelecimento, err := h.Estabelecimentos.GetByID(ctx, req.EstabelecimentoID)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar estabelecimento: "+err.Error())
		return
	}
	if estabelecimento == nil {
		utils.NotFound(c, "Estabelecimento não encontrado")
		return
	}

	porCPF, err := h.Funcionarios.GetByCPF(ctx, req.CPF)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar CPF: "+err.Error())
		return
	}
	if porCPF != nil {
		utils.BadRequest(c, "Já existe um funcionário com este CPF")
		return
	}

	funcionario := models.Funcionario{
		EstabelecimentoID:    req.EstabelecimentoID,
		Nome:                 req.Nome,
		CPF:                  req.CPF,
		Cargo:                req.Cargo,
		RegistroProfissional: req.RegistroProfissional,
		DataContratacao:      dataContratacao,
		Telefone:             req.Telefone,
		Email:                req.Email,
		Ativo:                true,
	}

	if err := h.Funcionarios.Create(ctx, &funcionario); err != nil {
		utils.InternalServerError(c, "Erro ao criar funcionário: "+err.Error())
		return
	}

	utils.Created(c, "Funcionário criado com sucesso", funcionario)
}

// AtualizarFuncionarioRequest represents the request body for a partial
// update. Ativo is a pointer so that deactivation (false) is distinguishable
// from an omitted field.
type AtualizarFuncionarioRequest struct {
	EstabelecimentoID    string `json:"estabelecimento_id,omitempty"`
	Nome                 string `json:"nome,omitempty"`
	Cargo                string `json:"cargo,omitempty"`
	RegistroProfissional string `json:"registro_profissional,omitempty"`
	Telefone             string `json:"telefone,omitempty"`
	Email                string `json:"email,omitempty"`
	Ativo                *bool  `json:"ativo,omitempty"`
}

// AtualizarFuncionario applies a partial update, only supplied fields change.
func (h *FuncionarioHandler) AtualizarFuncionario(c *gin.Context) {
	var req AtualizarFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Payload inválido: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	funcionario, err := h.Funcionarios.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar funcionário: "+err.Error())
		return
	}
	if funcionario == nil {
		utils.NotFound(c, "Funcionário não encontrado")
		return
	}

	if req.EstabelecimentoID != "" && req.EstabelecimentoID != funcionario.EstabelecimentoID {
		estabelecimento, err := h.Estabelecimentos.GetByID(ctx, req.EstabelecimentoID)
		if err != nil {
			utils.InternalServerError(c, "Erro ao consultar estabelecimento: "+err.Error())
			return
		}
		if estabelecimento == nil {
			utils.NotFound(c, "Estabelecimento não encontrado")
			return
		}
		funcionario.EstabelecimentoID = req.EstabelecimentoID
	}
	if req.Nome != "" {
		funcionario.Nome = req.Nome
	}
	if req.Cargo != "" {
		funcionario.Cargo = req.Cargo
	}
	if req.RegistroProfissional != "" {
		funcionario.RegistroProfissional = req.RegistroProfissional
	}
	if req.Telefone != "" {
		funcionario.Telefone = req.Telefone
	}
	if req.Email != "" {
		funcionario.Email = req.Email
	}
	if req.Ativo != nil {
		funcionario.Ativo = *req.Ativo
	}

	if err := h.Funcionarios.Update(ctx, funcionario); err != nil {
		utils.InternalServerError(c, "Erro ao atualizar funcionário: "+err.Error())
		return
	}

	utils.Success(c, "Funcionário atualizado com sucesso", funcionario)
}
