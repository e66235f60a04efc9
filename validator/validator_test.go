package validator

import (
	"testing"

	"portalubs/constants"
	"portalubs/errors"
	"portalubs/models"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		nome string
		user models.User
		code errors.ErrorCode
	}{
		{"válido", models.User{Email: "maria@saude.gov.br", Senha: "segredo1", Role: constants.RoleResponsavel}, ""},
		{"sem email", models.User{Senha: "segredo1", Role: constants.RoleAdmin}, errors.ErrCodeRequiredField},
		{"email inválido", models.User{Email: "maria@", Senha: "segredo1", Role: constants.RoleAdmin}, errors.ErrCodeInvalidEmail},
		{"senha curta", models.User{Email: "maria@saude.gov.br", Senha: "abc", Role: constants.RoleAdmin}, errors.ErrCodeValidation},
		{"role desconhecido", models.User{Email: "maria@saude.gov.br", Senha: "segredo1", Role: "gestor"}, errors.ErrCodeInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if tt.code == "" {
				if err != nil {
					t.Errorf("erro inesperado: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("queria %s, veio %v", tt.code, err)
			}
		})
	}
}

func TestValidatePosto(t *testing.T) {
	tests := []struct {
		nome  string
		posto models.Posto
		ok    bool
	}{
		{"válido", models.Posto{Nome: "UBS Centro", Localidade: "Centro"}, true},
		{"status explícito", models.Posto{Nome: "UBS Centro", Localidade: "Centro", Status: constants.PostoFechado}, true},
		{"sem nome", models.Posto{Localidade: "Centro"}, false},
		{"sem localidade", models.Posto{Nome: "UBS Centro"}, false},
		{"status inválido", models.Posto{Nome: "UBS Centro", Localidade: "Centro", Status: "reformando"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			err := ValidatePosto(&tt.posto)
			if tt.ok && err != nil {
				t.Errorf("erro inesperado: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("erro esperado, veio nil")
			}
		})
	}
}

func TestValidatePeriodo(t *testing.T) {
	if err := ValidatePeriodo(constants.PeriodoManha); err != nil {
		t.Errorf("manhã deveria ser aceita: %v", err)
	}
	if err := ValidatePeriodo(constants.PeriodoTarde); err != nil {
		t.Errorf("tarde deveria ser aceita: %v", err)
	}
	if err := ValidatePeriodo("noite"); !errors.HasCode(err, errors.ErrCodeInvalidPeriod) {
		t.Errorf("queria INVALID_PERIOD, veio %v", err)
	}
}
