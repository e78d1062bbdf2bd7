package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrInvalidIdentifier = errors.New("invalid business id")
	ErrNoMetricsFound    = errors.New("no metrics found for this business")
	ErrMissingQuery      = errors.New("query is required")
	ErrAIService         = errors.New("error calling AI service")
	ErrDatabaseOperation = errors.New("database operation error")
)

// InsightError é um erro com contexto adicional para as operações de IA
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
