package handlers

import (
	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/services"
	"sus-vacinacao-server/internal/utils"
)

// EstabelecimentoHandler handles health-facility CRUD requests. Deletion goes
// through the vaccination service, which owns the referential guards.
type EstabelecimentoHandler struct {
	Estabelecimentos repository.EstabelecimentoRepository
	Vacinacao        *services.VacinacaoService
}

// NewEstabelecimentoHandler creates a new EstabelecimentoHandler.
func NewEstabelecimentoHandler(
	estabelecimentos repository.EstabelecimentoRepository,
	vacinacao *services.VacinacaoService,
) *EstabelecimentoHandler {
	return &EstabelecimentoHandler{
		Estabelecimentos: estabelecimentos,
		Vacinacao:        vacinacao,
	}
}

// ListarEstabelecimentos lists facilities with an optional tipo filter.
func (h *EstabelecimentoHandler) ListarEstabelecimentos(c *gin.Context) {
	skip, limit := utils.Pagination(c)

	tipo := c.Query("tipo")
	if tipo != "" && !models.TipoEstabelecimentoValido(tipo) {
		utils.BadRequest(c, "Tipo de estabelecimento inválido. Use POSTO, HOSPITAL, UPA ou OUTRO")
		return
	}

	estabelecimentos, err := h.Estabelecimentos.List(c.Request.Context(), tipo, skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar estabelecimentos: "+err.Error())
		return
	}

	utils.Success(c, "Estabelecimentos listados com sucesso", estabelecimentos)
}

// ListarEstabelecimentosPorTipo lists facilities of one specific tipo.
func (h *EstabelecimentoHandler) ListarEstabelecimentosPorTipo(c *gin.Context) {
	skip, limit := utils.Pagination(c)

	tipo := c.Param("tipo")
	if !models.TipoEstabelecimentoValido(tipo) {
		utils.BadRequest(c, "Tipo de estabelecimento inválido. Use POSTO, HOSPITAL, UPA ou OUTRO")
		return
	}

	estabelecimentos, err := h.Estabelecimentos.List(c.Request.Context(), tipo, skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar estabelecimentos: "+err.Error())
		return
	}

	utils.Success(c, "Estabelecimentos listados com sucesso", estabelecimentos)
}

// ObterEstabelecimento fetches one facility by id.
func (h *EstabelecimentoHandler) ObterEstabelecimento(c *gin.Context) {
	estabelecimento, err := h.Estabelecimentos.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar estabelecimento: "+err.Error())
		return
	}
	if estabelecimento == nil {
		utils.NotFound(c, "Estabelecimento não encontrado")
		return
	}
	utils.Success(c, "Estabelecimento encontrado", estabelecimento)
}

// CriarEstabelecimentoRequest represents the request body for registering a
// facility.
type CriarEstabelecimentoRequest struct {
	Nome                 string `json:"nome" binding:"required,min=2,max=100"`
	Tipo                 string `json:"tipo" binding:"required,oneof=POSTO HOSPITAL UPA OUTRO"`
	CNES                 string `json:"cnes" binding:"required,min=7,max=20"`
	Endereco             string `json:"endereco" binding:"required,max=200"`
	Telefone             string `json:"telefone" binding:"max=20"`
	Email                string `json:"email" binding:"omitempty,email"`
	HorarioFuncionamento string `json:"horario_funcionamento" binding:"max=100"`
}

// CriarEstabelecimento registers a new facility, enforcing CNES uniqueness.
func (h *EstabelecimentoHandler) CriarEstabelecimento(c *gin.Context) {
	var req CriarEstabelecimentoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := utils.ValidarCNES(req.CNES); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	existente, err := h.Estabelecimentos.GetByCNES(c.Request.Context(), req.CNES)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar CNES: "+err.Error())
		return
	}
	if existente != nil {
		utils.BadRequest(c, "Já existe um estabelecimento com este CNES")
		return
	}

	estabelecimento := models.Estabelecimento{
		Nome:                 req.Nome,
		Tipo:                 models.TipoEstabelecimento(req.Tipo),
		CNES:                 req.CNES,
		Endereco:             req.Endereco,
		Telefone:             req.Telefone,
		Email:                req.Email,
		HorarioFuncionamento: req.HorarioFuncionamento,
	}

	if err := h.Estabelecimentos.Create(c.Request.Context(), &estabelecimento); err != nil {
		utils.InternalServerError(c, "Erro ao criar estabelecimento: "+err.Error())
		return
	}

	utils.Created(c, "Estabelecimento criado com sucesso", estabelecimento)
}

// AtualizarEstabelecimentoRequest represents the request body for a partial
// update.
type AtualizarEstabelecimentoRequest struct {
	Nome                 string `json:"nome,omitempty"`
	Tipo                 string `json:"tipo,omitempty"`
	CNES                 string `json:"cnes,omitempty"`
	Endereco             string `json:"endereco,omitempty"`
	Telefone             string `json:"telefone,omitempty"`
	Email                string `json:"email,omitempty"`
	HorarioFuncionamento string `json:"horario_funcionamento,omitempty"`
}

// AtualizarEstabelecimento applies a partial update, only supplied fields
// change.
func (h *EstabelecimentoHandler) AtualizarEstabelecimento(c *gin.Context) {
	var req AtualizarEstabelecimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Payload inválido: "+err.Error())
		return
	}

	estabelecimento, err := h.Estabelecimentos.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar estabelecimento: "+err.Error())
		return
	}
	if estabelecimento == nil {
		utils.NotFound(c, "Estabelecimento não encontrado")
		return
	}

	if req.Nome != "" {
		estabelecimento.Nome = req.Nome
	}
	if req.Tipo != "" {
		if !models.TipoEstabelecimentoValido(req.Tipo) {
			utils.BadRequest(c, "Tipo de estabelecimento inválido. Use POSTO, HOSPITAL, UPA ou OUTRO")
			return
		}
		estabelecimento.Tipo = models.TipoEstabelecimento(req.Tipo)
	}
	if req.CNES != "" && req.CNES != estabelecimento.CNES {
		if err := utils.ValidarCNES(req.CNES); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		existente, err := h.Estabelecimentos.GetByCNES(c.Request.Context(), req.CNES)
		if err != nil {
			utils.InternalServerError(c, "Erro ao consultar CNES: "+err.Error())
			return
		}
		if existente != nil {
			utils.BadRequest(c, "Já existe um estabelecimento com este CNES")
			return
		}
		estabelecimento.CNES = req.CNES
	}
	if req.Endereco != "" {
		estabelecimento.Endereco = req.Endereco
	}
	if req.Telefone != "" {
		estabelecimento.Telefone = req.Telefone
	}
	if req.Email != "" {
		estabelecimento.Email = req.Email
	}
	if req.HorarioFuncionamento != "" {
		estabelecimento.HorarioFuncionamento = req.HorarioFuncionamento
	}

	if err := h.Estabelecimentos.Update(c.Request.Context(), estabelecimento); err != nil {
		utils.InternalServerError(c, "Erro ao atualizar estabelecimento: "+err.Error())
		return
	}

	utils.Success(c, "Estabelecimento atualizado com sucesso", estabelecimento)
}

// RemoverEstabelecimento deletes a facility unless employees or vaccination
// records still reference it.
func (h *EstabelecimentoHandler) RemoverEstabelecimento(c *gin.Context) {
	if err := h.Vacinacao.RemoverEstabelecimento(c.Request.Context(), c.Param("id")); err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Estabelecimento removido com sucesso", nil)
}
