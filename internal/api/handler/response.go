package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-growth-api/internal/usecases/business"
	"github.com/vfg2006/business-growth-api/internal/usecases/insighting"
	"github.com/vfg2006/business-growth-api/internal/usecases/measuring"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody escreve o erro de requisição inválida e retorna false quando o corpo não decodifica
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para o corpo de erro da API
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		authErr      *authenticating.AuthError
		businessErr  *business.BusinessError
		measuringErr *measuring.MeasuringError
		insightErr   *insighting.InsightError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
	case errors.As(err, &businessErr):
		var details any
		if businessErr.BusinessID != "" {
			details = map[string]any{"business_id": businessErr.BusinessID}
		}
		apiErrors.WriteError(w, businessErr.Code, businessErr.Details, details)
	case errors.As(err, &measuringErr):
		apiErrors.WriteError(w, measuringErr.Code, measuringErr.Details, nil)
	case errors.As(err, &insightErr):
		apiErrors.WriteError(w, insightErr.Code, insightErr.Details, nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
