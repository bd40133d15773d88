package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			errorMessages = append(errorMessages, e.Error())
		}
		return strings.Join(errorMessages, ", ")
	}
	return err.Error()
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Payload inválido: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, "Validação falhou: "+FormatValidationError(err))
		return false
	}
	return true
}

// SoDigitos strips everything but digits, so formatted documents
// (000.000.000-00) validate the same as bare ones.
func SoDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarCPF checks the CPF digit count. No checksum, same as the registry
// intake rules.
func ValidarCPF(cpf string) error {
	if len(SoDigitos(cpf)) != 11 {
		return fmt.Errorf("CPF deve conter 11 dígitos")
	}
	return nil
}

// ValidarSUSNumero checks the SUS enrollment number digit count.
func ValidarSUSNumero(susNumero string) error {
	if len(SoDigitos(susNumero)) != 15 {
		return fmt.Errorf("número do SUS deve conter 15 dígitos")
	}
	return nil
}

// ValidarCNES checks the national facility code digit count.
func ValidarCNES(cnes string) error {
	if len(SoDigitos(cnes)) < 7 {
		return fmt.Errorf("CNES deve conter no mínimo 7 dígitos")
	}
	return nil
}
