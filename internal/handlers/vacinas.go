package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/services"
	"sus-vacinacao-server/internal/utils"
)

const dateLayout = "2006-01-02"

// VacinaHandler handles vaccine CRUD requests.
type VacinaHandler struct {
	Vacinas   repository.VacinaRepository
	Vacinacao *services.VacinacaoService
}

// NewVacinaHandler creates a new VacinaHandler.
func NewVacinaHandler(vacinas repository.VacinaRepository, vacinacao *services.VacinacaoService) *VacinaHandler {
	return &VacinaHandler{Vacinas: vacinas, Vacinacao: vacinacao}
}

// ListarVacinas lists vaccines with optional name/manufacturer filters.
func (h *VacinaHandler) ListarVacinas(c *gin.Context) {
	skip, limit := utils.Pagination(c)
	nome := c.Query("nome")
	fabricante := c.Query("fabricante")

	vacinas, err := h.Vacinas.List(c.Request.Context(), nome, fabricante, skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar vacinas: "+err.Error())
		return
	}

	utils.Success(c, "Vacinas listadas com sucesso", vacinas)
}

// ObterVacina fetches one vaccine by id.
func (h *VacinaHandler) ObterVacina(c *gin.Context) {
	vacina, err := h.Vacinas.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar vacina: "+err.Error())
		return
	}
	if vacina == nil {
		utils.NotFound(c, "Vacina não encontrada")
		return
	}
	utils.Success(c, "Vacina encontrada", vacina)
}

// CriarVacinaRequest represents the request body for registering a vaccine.
type CriarVacinaRequest struct {
	Nome       string `json:"nome" binding:"required,min=2,max=100"`
	Fabricante string `json:"fabricante" binding:"required,max=100"`
	Lote       string `json:"lote" binding:"required,max=50"`
	Validade   string `json:"validade" binding:"required"`
}

// CriarVacina registers a new vaccine batch.
func (h *VacinaHandler) CriarVacina(c *gin.Context) {
	var req CriarVacinaRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	validade, err := time.Parse(dateLayout, req.Validade)
	if err != nil {
		utils.BadRequest(c, "Data de validade inválida, use o formato AAAA-MM-DD")
		return
	}

	vacina := models.Vacina{
		Nome:       req.Nome,
		Fabricante: req.Fabricante,
		Lote:       req.Lote,
		Validade:   validade,
	}

	if err := h.Vacinas.Create(c.Request.Context(), &vacina); err != nil {
		utils.InternalServerError(c, "Erro ao criar vacina: "+err.Error())
		return
	}

	utils.Created(c, "Vacina criada com sucesso", vacina)
}

// AtualizarVacinaRequest represents the request body for a partial update.
type AtualizarVacinaRequest struct {
	Nome       string `json:"nome,omitempty"`
	Fabricante string `json:"fabricante,omitempty"`
	Lote       string `json:"lote,omitempty"`
	Validade   string `json:"validade,omitempty"`
}

// AtualizarVacina applies a partial update, only supplied fields change.
func (h *VacinaHandler) AtualizarVacina(c *gin.Context) {
	var req AtualizarVacinaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Payload inválido: "+err.Error())
		return
	}

	vacina, err := h.Vacinas.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar vacina: "+err.Error())
		return
	}
	if vacina == nil {
		utils.NotFound(c, "Vacina não encontrada")
		return
	}

	if req.Nome != "" {
		vacina.Nome = req.Nome
	}
	if req.Fabricante != "" {
		vacina.Fabricante = req.Fabricante
	}
	if req.Lote != "" {
		vacina.Lote = req.Lote
	}
	if req.Validade != "" {
		validade, err := time.Parse(dateLayout, req.Validade)
		if err != nil {
			utils.BadRequest(c, "Data de validade inválida, use o formato AAAA-MM-DD")
			return
		}
		vacina.Validade = validade
	}

	if err := h.Vacinas.Update(c.Request.Context(), vacina); err != nil {
		utils.InternalServerError(c, "Erro ao atualizar vacina: "+err.Error())
		return
	}

	utils.Success(c, "Vacina atualizada com sucesso", vacina)
}

// RemoverVacina deletes a vaccine unless some vaccination record references it.
func (h *VacinaHandler) RemoverVacina(c *gin.Context) {
	if err := h.Vacinacao.RemoverVacina(c.Request.Context(), c.Param("id")); err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Vacina removida com sucesso", nil)
}
