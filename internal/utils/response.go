package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/models"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created sends a standard resource created response.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: "Ocorreu um erro",
		Error:   errorMessage,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}

// DomainError maps a domain error onto its HTTP status: absent references are
// 404, uniqueness conflicts are 400 (the convention the API has always used),
// bad credentials are 401, anything else is a storage failure.
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrPacienteNaoEncontrado),
		errors.Is(err, models.ErrVacinaNaoEncontrada),
		errors.Is(err, models.ErrFuncionarioNaoEncontrado),
		errors.Is(err, models.ErrEstabelecimentoNaoEncontrado):
		NotFound(c, err.Error())
	case errors.Is(err, models.ErrDoseDuplicada),
		errors.Is(err, models.ErrVacinaEmUso),
		errors.Is(err, models.ErrEstabelecimentoEmUso):
		BadRequest(c, err.Error())
	case errors.Is(err, models.ErrCredenciaisInvalidas):
		Unauthorized(c, err.Error())
	default:
		InternalServerError(c, err.Error())
	}
}
