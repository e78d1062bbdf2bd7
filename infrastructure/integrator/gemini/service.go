package gemini

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/log"
	"github.com/vfg2006/business-growth-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes das operações usados em logs e métricas
const (
	operationBusinessInsights = "business_insights"
	operationAnalyzeMetrics   = "analyze_metrics"
	operationGrowthPlan       = "growth_plan"
	operationMarketInsights   = "market_insights"
	operationAnswerQuestion   = "answer_question"
	operationRecommendations  = "recommendations"
)

type GeminiIntegrator interface {
	BusinessInsights(ctx context.Context, profile domain.BusinessProfile) (string, error)
	AnalyzeMetrics(ctx context.Context, samples []domain.MetricSample) (string, error)
	GrowthPlan(ctx context.Context, profile domain.BusinessProfile, timeframe string) (domain.GrowthPlan, error)
	MarketInsights(ctx context.Context, industry, businessContext string) (string, error)
	AnswerQuestion(ctx context.Context, question string, businessContext []ContextEntry) (string, error)
	Recommendations(ctx context.Context, profile domain.BusinessProfile, focusArea string) (domain.Recommendations, error)
}

type GeminiService struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		Client: client,
	}
}

func (s *GeminiService) BusinessInsights(ctx context.Context, profile domain.BusinessProfile) (string, error) {
	return s.generate(ctx, operationBusinessInsights, businessInsightsTemplate, profile)
}

func (s *GeminiService) AnalyzeMetrics(ctx context.Context, samples []domain.MetricSample) (string, error) {
	return s.generate(ctx, operationAnalyzeMetrics, analyzeMetricsTemplate, struct {
		Metrics []domain.MetricSample
	}{Metrics: samples})
}

func (s *GeminiService) GrowthPlan(ctx context.Context, profile domain.BusinessProfile, timeframe string) (domain.GrowthPlan, error) {
	text, err := s.generate(ctx, operationGrowthPlan, growthPlanTemplate, struct {
		Profile   domain.BusinessProfile
		Timeframe string
	}{Profile: profile, Timeframe: timeframe})
	if err != nil {
		return nil, err
	}

	plan, ok := ParseGrowthPlan(text)
	if !ok {
		s.recordFallback(ctx, operationGrowthPlan)
	}

	return plan, nil
}

func (s *GeminiService) MarketInsights(ctx context.Context, industry, businessContext string) (string, error) {
	return s.generate(ctx, operationMarketInsights, marketInsightsTemplate, struct {
		Industry string
		Context  string
	}{Industry: industry, Context: businessContext})
}

func (s *GeminiService) AnswerQuestion(ctx context.Context, question string, businessContext []ContextEntry) (string, error) {
	return s.generate(ctx, operationAnswerQuestion, answerQuestionTemplate, struct {
		Question string
		Context  []ContextEntry
	}{Question: question, Context: businessContext})
}

func (s *GeminiService) Recommendations(ctx context.Context, profile domain.BusinessProfile, focusArea string) (domain.Recommendations, error) {
	text, err := s.generate(ctx, operationRecommendations, recommendationsTemplate, struct {
		Profile   domain.BusinessProfile
		FocusArea string
	}{Profile: profile, FocusArea: focusArea})
	if err != nil {
		return nil, err
	}

	recommendations, ok := ParseRecommendations(text)
	if !ok {
		s.recordFallback(ctx, operationRecommendations)
	}

	return recommendations, nil
}

// generate monta o prompt e chama o modelo uma única vez, sem novas tentativas
func (s *GeminiService) generate(ctx context.Context, operation, templateName string, data any) (string, error) {
	prompt, err := renderPrompt(templateName, data)
	if err != nil {
		return "", err
	}

	logger := log.ForContext(ctx).WithField("operation", operation)
	logger.Debug("Enviando prompt ao Gemini")

	start := time.Now()
	text, err := s.Client.Generate(ctx, prompt)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordAICall(operation, metrics.OutcomeError, duration)
		logger.WithError(err).Error("Erro na chamada ao Gemini")
		return "", err
	}

	metrics.RecordAICall(operation, metrics.OutcomeSuccess, duration)
	logger.Debugf("Resposta do Gemini recebida em %s", duration)

	return text, nil
}

func (s *GeminiService) recordFallback(ctx context.Context, operation string) {
	metrics.RecordAIFallback(operation)
	log.ForContext(ctx).
		WithField("operation", operation).
		Warn("Resposta do Gemini não contém JSON válido, usando formato padrão")
}
