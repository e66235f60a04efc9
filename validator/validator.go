package validator

import (
	"regexp"

	"portalubs/constants"
	"portalubs/errors"
	"portalubs/models"
)

// ValidateUser valida os dados de um usuário novo
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email não pode ficar vazio", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email inválido", nil)
	}

	if user.Senha == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Senha não pode ficar vazia", nil)
	}

	if len(user.Senha) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Senha precisa ter ao menos 6 caracteres", nil)
	}

	return ValidateRole(user.Role)
}

// ValidateRole valida o papel do usuário
func ValidateRole(role string) error {
	if role != constants.RoleAdmin && role != constants.RoleResponsavel {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role inválido: "+role, nil)
	}
	return nil
}

// ValidatePosto valida os dados de um posto
func ValidatePosto(posto *models.Posto) error {
	if posto.Nome == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nome do posto não pode ficar vazio", nil)
	}

	if posto.Localidade == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Localidade não pode ficar vazia", nil)
	}

	if posto.Status != "" && posto.Status != constants.PostoAberto && posto.Status != constants.PostoFechado {
		return errors.NewAppError(errors.ErrCodeValidation, "Status do posto inválido: "+posto.Status, nil)
	}

	return nil
}

// ValidatePeriodo valida o período de check
func ValidatePeriodo(periodo string) error {
	if periodo != constants.PeriodoManha && periodo != constants.PeriodoTarde {
		return errors.NewAppError(errors.ErrCodeInvalidPeriod, "Período inválido: "+periodo, nil)
	}
	return nil
}

// isValidEmail verifica se o email é válido
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
