package handler

import (
	"net/http"

	"github.com/vfg2006/business-growth-api/internal/api/handler/router"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-growth-api/internal/usecases/business"
	"github.com/vfg2006/business-growth-api/internal/usecases/insighting"
	"github.com/vfg2006/business-growth-api/internal/usecases/measuring"
	"github.com/vfg2006/business-growth-api/pkg/metrics"
	"github.com/vfg2006/business-growth-api/pkg/middleware"
)

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(cfg),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/api/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(service)},
		},
		{
			Path:    "/api/auth/complete-metrics/:business_id",
			Method:  http.MethodPost,
			Handler: CompleteMetrics(service),
		},
	}
}

func Business(
	service business.BusinessService,
	measuringService measuring.MeasuringService,
	validator middleware.TokenValidator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/business/",
			Method:  http.MethodPost,
			Handler: CreateBusiness(service),
		},
		{
			Path:        "/api/business/",
			Method:      http.MethodGet,
			Handler:     ListBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(validator)},
		},
		{
			Path:    "/api/business/:business_id",
			Method:  http.MethodGet,
			Handler: GetBusiness(service),
		},
		{
			Path:    "/api/business/metrics",
			Method:  http.MethodPost,
			Handler: AddMetric(service),
		},
		{
			Path:    "/api/business/metrics/batch",
			Method:  http.MethodPost,
			Handler: AddMetricsBatch(service),
		},
		{
			Path:    "/api/business/:business_id/metrics",
			Method:  http.MethodGet,
			Handler: ListMetrics(service),
		},
		{
			Path:    "/api/business/:business_id/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(measuringService),
		},
		{
			Path:    "/api/business/:business_id/revenue-trends",
			Method:  http.MethodGet,
			Handler: GetRevenueTrends(measuringService),
		},
		{
			Path:    "/api/business/:business_id/growth-by-category",
			Method:  http.MethodGet,
			Handler: GetGrowthByCategory(measuringService),
		},
		{
			// fora de /api/business: o httprouter não aceita "debug" ao lado de :business_id
			Path:    "/api/debug/all-metrics",
			Method:  http.MethodGet,
			Handler: DebugAllMetrics(service),
		},
	}
}

func AI(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ai/insights/:business_id",
			Method:  http.MethodPost,
			Handler: GetBusinessInsights(service),
		},
		{
			Path:    "/api/ai/analyze-metrics/:business_id",
			Method:  http.MethodPost,
			Handler: AnalyzeMetrics(service),
		},
		{
			Path:    "/api/ai/growth-plan/:business_id",
			Method:  http.MethodPost,
			Handler: GenerateGrowthPlan(service),
		},
		{
			Path:    "/api/ai/market-insights/:industry",
			Method:  http.MethodGet,
			Handler: GetMarketInsights(service),
		},
		{
			Path:    "/api/ai/ask",
			Method:  http.MethodPost,
			Handler: AskQuestion(service),
		},
		{
			Path:    "/api/ai/recommendations/:business_id",
			Method:  http.MethodPost,
			Handler: GetRecommendations(service),
		},
		{
			Path:    "/api/ai/history/:business_id",
			Method:  http.MethodGet,
			Handler: GetInteractionHistory(service),
		},
	}
}

func CronJobs(services CronJobServices, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(validator)},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(validator)},
		},
	}
}
