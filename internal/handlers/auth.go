package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"sus-vacinacao-server/internal/config"
	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/utils"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	Usuarios repository.UsuarioRepository
	Config   *config.Config
	Logger   zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(usuarios repository.UsuarioRepository, cfg *config.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{Usuarios: usuarios, Config: cfg, Logger: logger}
}

// LoginRequest carries the credentials. Both form (OAuth2 password flow) and
// JSON bodies are accepted.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login verifies the credentials against the stored bcrypt hash and issues an
// access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Payload inválido: "+err.Error())
		return
	}

	usuario, err := h.Usuarios.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		utils.InternalServerError(c, "Erro ao consultar usuário: "+err.Error())
		return
	}

	if usuario == nil || !usuario.Ativo || !usuario.VerificarSenha(req.Password) {
		h.Logger.Warn().Str("username", req.Username).Msg("login recusado")
		c.Header("WWW-Authenticate", "Bearer")
		utils.DomainError(c, models.ErrCredenciaisInvalidas)
		return
	}

	token, err := utils.GenerateAccessToken(usuario, h.Config)
	if err != nil {
		utils.InternalServerError(c, "Erro ao gerar token: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
