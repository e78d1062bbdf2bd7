package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/internal/usecases/insighting"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
	"github.com/vfg2006/business-growth-api/pkg/utils"
)

func GetBusinessInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.Insights(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func AnalyzeMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.AnalyzeMetrics(r.Context(), businessIDParam(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GenerateGrowthPlan(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timeframe := utils.StringOrDefault(r.URL.Query().Get("timeframe"), insighting.DefaultTimeframe)

		plan, err := service.GrowthPlan(r.Context(), businessIDParam(r), timeframe)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

func GetMarketInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		industry := httprouter.ParamsFromContext(r.Context()).ByName("industry")

		insights, err := service.MarketInsights(r.Context(), industry)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}

func AskQuestion(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AskRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Ask(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetRecommendations(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		focusArea := utils.StringOrDefault(r.URL.Query().Get("focus_area"), insighting.DefaultFocusArea)

		recommendations, err := service.Recommendations(r.Context(), businessIDParam(r), focusArea)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

func GetInteractionHistory(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := utils.ParseUintOrDefault(r.URL.Query().Get("limit"), insighting.DefaultHistoryLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid limit", r.URL.Query().Get("limit"))
			return
		}

		history, err := service.History(r.Context(), businessIDParam(r), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}
