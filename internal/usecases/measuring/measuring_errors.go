package measuring

import (
	"errors"
	"fmt"
)

var (
	ErrFetchMetrics = errors.New("error fetching metrics from database")
	ErrAggregation  = errors.New("error aggregating metrics")
)

// MeasuringError é um erro com contexto adicional para o cálculo de indicadores
type MeasuringError struct {
	Err     error
	Code    string
	Details string
}

func (e *MeasuringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MeasuringError) Unwrap() error {
	return e.Err
}

func NewMeasuringError(err error, code string, details string) *MeasuringError {
	return &MeasuringError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
