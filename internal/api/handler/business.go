package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/internal/usecases/business"
	"github.com/vfg2006/business-growth-api/internal/usecases/measuring"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
	"github.com/vfg2006/business-growth-api/pkg/middleware"
)

func businessIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("business_id")
}

func CreateBusiness(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateBusinessRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, created)
	}
}

// ListBusinesses lista o negócio do usuário autenticado
func ListBusinesses(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		businesses, err := service.ListForUser(r.Context(), claims)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, businesses)
	}
}

func GetBusiness(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found, err := service.Get(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

func AddMetric(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateMetricRequest
		if !decodeBody(w, r, &req) {
			return
		}

		metric, err := service.AddMetric(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, metric)
	}
}

func AddMetricsBatch(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req []domain.CreateMetricRequest
		if !decodeBody(w, r, &req) {
			return
		}

		metrics, err := service.AddMetricsBatch(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func ListMetrics(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.ListMetrics(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

// DebugAllMetrics devolve todas as métricas de todos os negócios
func DebugAllMetrics(service business.BusinessService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dump, err := service.DebugDump(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dump)
	}
}

func GetKPIs(service measuring.MeasuringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	}
}

func GetRevenueTrends(service measuring.MeasuringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trends, err := service.RevenueTrends(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, trends)
	}
}

func GetGrowthByCategory(service measuring.MeasuringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		growth, err := service.GrowthByCategory(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, growth)
	}
}
