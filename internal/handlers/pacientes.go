package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/utils"
)

// PacienteHandler handles patient requests. Patients are never deleted, so
// there is no delete endpoint.
type PacienteHandler struct {
	Pacientes repository.PacienteRepository
}

// NewPacienteHandler creates a new PacienteHandler.
func NewPacienteHandler(pacientes repository.PacienteRepository) *PacienteHandler {
	return &PacienteHandler{Pacientes: pacientes}
}

// ListarPacientes lists patients with pagination.
func (h *PacienteHandler) ListarPacientes(c *gin.Context) {
	skip, limit := utils.Pagination(c)

	pacientes, err := h.Pacientes.List(c.Request.Context(), skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Erro ao listar pacientes: "+err.Error())
		return
	}

	utils.Success(c, "Pacientes listados com sucesso", pacientes)
}

// ObterPaciente fetches one patient by id.
func (h *PacienteHandler) ObterPaciente(c *gin.Context) {
	paciente, err := h.Pacientes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar paciente: "+err.Error())
		return
	}
	if paciente == nil {
		utils.NotFound(c, "Paciente não encontrado")
		return
	}
	utils.Success(c, "Paciente encontrado", paciente)
}

// ObterPacientePorCPF fetches one patient by CPF.
func (h *PacienteHandler) ObterPacientePorCPF(c *gin.Context) {
	paciente, err := h.Pacientes.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar paciente: "+err.Error())
		return
	}
	if paciente == nil {
		utils.NotFound(c, "Paciente não encontrado")
		return
	}
	utils.Success(c, "Paciente encontrado", paciente)
}

// ObterPacientePorSUS fetches one patient by SUS number.
func (h *PacienteHandler) ObterPacientePorSUS(c *gin.Context) {
	paciente, err := h.Pacientes.GetBySUSNumero(c.Request.Context(), c.Param("sus_numero"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar paciente: "+err.Error())
		return
	}
	if paciente == nil {
		utils.NotFound(c, "Paciente não encontrado")
		return
	}
	utils.Success(c, "Paciente encontrado", paciente)
}

// CriarPacienteRequest represents the request body for enrolling a patient.
type CriarPacienteRequest struct {
	Nome           string `json:"nome" binding:"required,min=2,max=100"`
	CPF            string `json:"cpf" binding:"required,min=11,max=14"`
	DataNascimento string `json:"data_nascimento" binding:"required"`
	Sexo           string `json:"sexo" binding:"required,oneof=M F O"`
	Endereco       string `json:"endereco" binding:"max=200"`
	Telefone       string `json:"telefone" binding:"max=20"`
	Email          string `json:"email" binding:"omitempty,email"`
	TipoSanguineo  string `json:"tipo_sanguineo" binding:"max=3"`
	SUSNumero      string `json:"sus_numero" binding:"required,min=15,max=20"`
}

// CriarPaciente enrolls a new patient, enforcing CPF and SUS-number
// uniqueness.
func (h *PacienteHandler) CriarPaciente(c *gin.Context) {
	var req CriarPacienteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := utils.ValidarCPF(req.CPF); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := utils.ValidarSUSNumero(req.SUSNumero); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	dataNascimento, err := time.Parse(dateLayout, req.DataNascimento)
	if err != nil {
		utils.BadRequest(c, "Data de nascimento inválida, use o formato AAAA-MM-DD")
		return
	}

	ctx := c.Request.Context()
	porCPF, err := h.Pacientes.GetByCPF(ctx, req.CPF)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar CPF: "+err.Error())
		return
	}
	if porCPF != nil {
		utils.BadRequest(c, "Já existe um paciente com este CPF")
		return
	}
	porSUS, err := h.Pacientes.GetBySUSNumero(ctx, req.SUSNumero)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar número do SUS: "+err.Error())
		return
	}
	if porSUS != nil {
		utils.BadRequest(c, "Já existe um paciente com este número do SUS")
		return
	}

	paciente := models.Paciente{
		Nome:           req.Nome,
		CPF:            req.CPF,
		DataNascimento: dataNascimento,
		Sexo:           models.SexoPaciente(req.Sexo),
		Endereco:       req.Endereco,
		Telefone:       req.Telefone,
		Email:          req.Email,
		TipoSanguineo:  req.TipoSanguineo,
		SUSNumero:      req.SUSNumero,
	}

	if err := h.Pacientes.Create(ctx, &paciente); err != nil {
		utils.InternalServerError(c, "Erro ao criar paciente: "+err.Error())
		return
	}

	utils.Created(c, "Paciente criado com sucesso", paciente)
}

// AtualizarPacienteRequest represents the request body for a partial update.
type AtualizarPacienteRequest struct {
	Nome           string `json:"nome,omitempty"`
	CPF            string `json:"cpf,omitempty"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Sexo           string `json:"sexo,omitempty"`
	Endereco       string `json:"endereco,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Email          string `json:"email,omitempty"`
	TipoSanguineo  string `json:"tipo_sanguineo,omitempty"`
	SUSNumero      string `json:"sus_numero,omitempty"`
}

// AtualizarPaciente applies a partial update, only supplied fields change.
func (h *PacienteHandler) AtualizarPaciente(c *gin.Context) {
	var req AtualizarPacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Payload inválido: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	paciente, err := h.Pacientes.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar paciente: "+err.Error())
		return
	}
	if paciente == nil {
		utils.NotFound(c, "Paciente não encontrado")
		return
	}

	if req.Nome != "" {
		paciente.Nome = req.Nome
	}
	if req.CPF != "" && req.CPF != paciente.CPF {
		if err := utils.ValidarCPF(req.CPF); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		existente, err := h.Pacientes.GetByCPF(ctx, req.CPF)
		if err != nil {
			utils.InternalServerError(c, "Erro ao consultar CPF: "+err.Error())
			return
		}
		if existente != nil {
			utils.BadRequest(c, "Já existe um paciente com este CPF")
			return
		}
		paciente.CPF = req.CPF
	}
	if req.DataNascimento != "" {
		dataNascimento, err := time.Parse(dateLayout, req.DataNascimento)
		if err != nil {
			utils.BadRequest(c, "Data de nascimento inválida, use o formato AAAA-MM-DD")
			return
		}
		paciente.DataNascimento = dataNascimento
	}
	if req.Sexo != "" {
		if req.Sexo != "M" && req.Sexo != "F" && req.Sexo != "O" {
			utils.BadRequest(c, "Sexo inválido. Use M, F ou O")
			return
		}
		paciente.Sexo = models.SexoPaciente(req.Sexo)
	}
	if req.Endereco != "" {
		paciente.Endereco = req.Endereco
	}
	if req.Telefone != "" {
		paciente.Telefone = req.Telefone
	}
	if req.Email != "" {
		paciente.Email = req.Email
	}
	if req.TipoSanguineo != "" {
		paciente.TipoSanguineo = req.TipoSanguineo
	}
	if req.SUSNumero != "" && req.SUSNumero != paciente.SUSNumero {
		if err := utils.ValidarSUSNumero(req.SUSNumero); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		existente, err := h.Pacientes.GetBySUSNumero(ctx, req.SUSNumero)
		if err != nil {
			utils.InternalServerError(c, "Erro ao consultar número do SUS: "+err.Error())
			return
		}
		if existente != nil {
			utils.BadRequest(c, "Já existe um paciente com este número do SUS")
			return
		}
		paciente.SUSNumero = req.SUSNumero
	}

	if err := h.Pacientes.Update(ctx, paciente); err != nil {
		utils.InternalServerError(c, "Erro ao atualizar paciente: "+err.Error())
		return
	}

	utils.Success(c, "Paciente atualizado com sucesso", paciente)
}
