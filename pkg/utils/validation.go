package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateRequired validates that a field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s é obrigatório", fieldName)
	}
	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("e-mail é obrigatório")
	}
	if len(email) > 200 {
		return fmt.Errorf("e-mail muito longo (máximo 200 caracteres)")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("e-mail inválido: %s", email)
	}
	return nil
}

// ValidateMaxLength validates a field against a length limit
func ValidateMaxLength(fieldName, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s muito longo (máximo %d caracteres)", fieldName, max)
	}
	return nil
}

// ValidateTipoCadastro validates the registration type tag
func ValidateTipoCadastro(tipo string) error {
	switch tipo {
	case "cadastro", "renovacao", "inclusao":
		return nil
	case "":
		return fmt.Errorf("tipo de cadastro é obrigatório")
	default:
		return fmt.Errorf("tipo de cadastro inválido: %s", tipo)
	}
}

// ValidatePagination validates limit and offset
func ValidatePagination(limit, offset int) error {
	if limit < 1 || limit > 100 {
		return fmt.Errorf("limit deve estar entre 1 e 100")
	}
	if offset < 0 {
		return fmt.Errorf("offset deve ser não-negativo")
	}
	return nil
}
