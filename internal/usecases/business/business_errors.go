package business

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de negócios
var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrInvalidIdentifier = errors.New("invalid business id")
	ErrNoMetricsProvided = errors.New("no metrics provided")
	ErrCreateBusiness    = errors.New("error creating business")
	ErrCreateMetric      = errors.New("error creating metric")
	ErrFetchMetrics      = errors.New("error fetching metrics from database")
	ErrFetchBusiness     = errors.New("error fetching business from database")
)

// BusinessError é um erro com contexto adicional para negócios
type BusinessError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	BusinessID string // ID do negócio envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *BusinessError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(err error, code string, details string) *BusinessError {
	return &BusinessError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBusinessErrorWithID cria um novo BusinessError com o ID do negócio
func NewBusinessErrorWithID(err error, code string, businessID string, details string) *BusinessError {
	return &BusinessError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
