package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/services"
	"sus-vacinacao-server/internal/utils"
)

// CarteiraHandler handles vaccination-card requests.
type CarteiraHandler struct {
	Vacinacao *services.VacinacaoService
}

// NewCarteiraHandler creates a new CarteiraHandler.
func NewCarteiraHandler(vacinacao *services.VacinacaoService) *CarteiraHandler {
	return &CarteiraHandler{Vacinacao: vacinacao}
}

// ListarVacinacoes lists vaccination records in the denormalized shape,
// optionally filtered by patient.
func (h *CarteiraHandler) ListarVacinacoes(c *gin.Context) {
	skip, limit := utils.Pagination(c)
	pacienteID := c.Query("paciente_id")

	registros, err := h.Vacinacao.ListarRegistros(c.Request.Context(), pacienteID, skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar vacinações: "+err.Error())
		return
	}

	utils.Success(c, "Vacinações listadas com sucesso", registros)
}

// CarteiraPaciente returns a patient's full vaccination card.
func (h *CarteiraHandler) CarteiraPaciente(c *gin.Context) {
	carteira, err := h.Vacinacao.CarteiraDoPaciente(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Carteira de vacinação encontrada", carteira)
}

// RegistrarVacinacaoRequest represents the request body for registering a
// vaccination.
type RegistrarVacinacaoRequest struct {
	PacienteID        string `json:"paciente_id" binding:"required,uuid"`
	VacinaID          string `json:"vacina_id" binding:"required,uuid"`
	FuncionarioID     string `json:"funcionario_id" binding:"required,uuid"`
	EstabelecimentoID string `json:"estabelecimento_id" binding:"required,uuid"`
	DataAplicacao     string `json:"data_aplicacao" binding:"required"`
	Dose              string `json:"dose" binding:"required,max=20"`
	Observacoes       string `json:"observacoes"`
}

// RegistrarVacinacao registers one vaccination event on the card.
func (h *CarteiraHandler) RegistrarVacinacao(c *gin.Context) {
	var req RegistrarVacinacaoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dataAplicacao, err := time.Parse(time.RFC3339, req.DataAplicacao)
	if err != nil {
		utils.BadRequest(c, "Data de aplicação inválida, use o formato ISO 8601 (AAAA-MM-DDTHH:MM:SSZ)")
		return
	}

	registro := models.CarteiraVacinacao{
		PacienteID:        req.PacienteID,
		VacinaID:          req.VacinaID,
		FuncionarioID:     req.FuncionarioID,
		EstabelecimentoID: req.EstabelecimentoID,
		DataAplicacao:     dataAplicacao,
		Dose:              req.Dose,
		Observacoes:       req.Observacoes,
	}

	criado, err := h.Vacinacao.Registrar(c.Request.Context(), &registro)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	utils.Created(c, "Vacinação registrada com sucesso", criado)
}
