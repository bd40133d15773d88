package handlers

import (
	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/utils"
)

// ProntuarioHandler is a placeholder: medical charts have no model yet.
// TODO: replace once the prontuário schema lands.
type ProntuarioHandler struct{}

// NewProntuarioHandler creates a new ProntuarioHandler.
func NewProntuarioHandler() *ProntuarioHandler {
	return &ProntuarioHandler{}
}

// ListarProntuarios returns the placeholder message.
func (h *ProntuarioHandler) ListarProntuarios(c *gin.Context) {
	utils.Success(c, "Endpoint para listar prontuários (placeholder)", nil)
}
