package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define o código de erro
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists   ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Check errors
	ErrCodeOutOfWindow   ErrorCode = "OUT_OF_WINDOW"
	ErrCodeInvalidPeriod ErrorCode = "INVALID_PERIOD"

	// Correção errors
	ErrCodeCorrectionNotPending ErrorCode = "CORRECTION_NOT_PENDING"
	ErrCodePartialApproval      ErrorCode = "PARTIAL_APPROVAL"
	ErrCodeInvalidDecision      ErrorCode = "INVALID_DECISION"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError define o erro da aplicação
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError cria um novo AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica se o erro é um AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrai o AppError do erro
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode verifica se o erro carrega o código informado
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrUserAlreadyExists = errors.New("usuário já existe")
	ErrInvalidPassword   = errors.New("senha inválida")
	ErrUnauthorized      = errors.New("não autorizado")

	ErrPostoNotFound    = errors.New("posto não encontrado")
	ErrCorrecaoNotFound = errors.New("solicitação de correção não encontrada")

	ErrInvalidInput    = errors.New("entrada inválida")
	ErrMissingRequired = errors.New("campo obrigatório ausente")
	ErrInvalidFormat   = errors.New("formato inválido")
)
