package insighting

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
	"github.com/vfg2006/business-growth-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type InsightService struct {
	businessRepo    repository.BusinessRepository
	metricRepo      repository.MetricRepository
	interactionRepo repository.InteractionRepository
	gemini          gemini.GeminiIntegrator
	now             func() time.Time
}

func NewInsightService(
	businessRepo repository.BusinessRepository,
	metricRepo repository.MetricRepository,
	interactionRepo repository.InteractionRepository,
	geminiService gemini.GeminiIntegrator,
) Insighter {
	return &InsightService{
		businessRepo:    businessRepo,
		metricRepo:      metricRepo,
		interactionRepo: interactionRepo,
		gemini:          geminiService,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *InsightService) Insights(ctx context.Context, businessID string) (*domain.AIResponse, error) {
	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	insights, err := s.gemini.BusinessInsights(ctx, business.Profile())
	if err != nil {
		return nil, aiError(err)
	}

	if err := s.record(ctx, businessID, "Business insights request", insights, domain.InteractionTypeInsight); err != nil {
		return nil, err
	}

	return &domain.AIResponse{Response: insights, InteractionType: domain.InteractionTypeInsight}, nil
}

// AnalyzeMetrics envia todas as métricas do negócio para análise; sem métricas não há chamada ao modelo
func (s *InsightService) AnalyzeMetrics(ctx context.Context, businessID string) (*domain.AIResponse, error) {
	if _, err := s.findBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	metrics, err := s.metricRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("business_id", businessID).Error("Erro ao buscar métricas para análise")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error getting metrics")
	}

	if len(metrics) == 0 {
		return nil, NewInsightError(ErrNoMetricsFound, apiErrors.ErrMetricsNotFound, "No metrics found for this business")
	}

	samples := make([]domain.MetricSample, 0, len(metrics))
	for _, metric := range metrics {
		samples = append(samples, domain.MetricSample{
			MetricType: metric.MetricType,
			Value:      metric.Value,
			Period:     metric.Period,
		})
	}

	analysis, err := s.gemini.AnalyzeMetrics(ctx, samples)
	if err != nil {
		return nil, aiError(err)
	}

	if err := s.record(ctx, businessID, "Metrics analysis request", analysis, domain.InteractionTypeAnalysis); err != nil {
		return nil, err
	}

	return &domain.AIResponse{Response: analysis, InteractionType: domain.InteractionTypeAnalysis}, nil
}

func (s *InsightService) GrowthPlan(ctx context.Context, businessID, timeframe string) (domain.GrowthPlan, error) {
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}

	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	plan, err := s.gemini.GrowthPlan(ctx, business.Profile(), timeframe)
	if err != nil {
		return nil, aiError(err)
	}

	query := fmt.Sprintf("Growth plan request (%s)", timeframe)
	if err := s.record(ctx, businessID, query, encodeResponse(plan), domain.InteractionTypeGrowthPlan); err != nil {
		return nil, err
	}

	return plan, nil
}

// MarketInsights não depende de um negócio e não é gravado no histórico
func (s *InsightService) MarketInsights(ctx context.Context, industry string) (*domain.MarketInsights, error) {
	insights, err := s.gemini.MarketInsights(ctx, industry, "")
	if err != nil {
		return nil, aiError(err)
	}

	return &domain.MarketInsights{Industry: industry, Insights: insights}, nil
}

func (s *InsightService) Ask(ctx context.Context, request *domain.AskRequest) (*domain.AIResponse, error) {
	if request.Query == "" {
		return nil, NewInsightError(ErrMissingQuery, apiErrors.ErrMissingRequiredData, "Query is required")
	}

	business, err := s.findBusiness(ctx, request.BusinessID)
	if err != nil {
		return nil, err
	}

	businessContext := gemini.BuildQuestionContext(business.Profile(), request.Context)

	answer, err := s.gemini.AnswerQuestion(ctx, request.Query, businessContext)
	if err != nil {
		return nil, aiError(err)
	}

	if err := s.record(ctx, request.BusinessID, request.Query, answer, domain.InteractionTypeQuestion); err != nil {
		return nil, err
	}

	return &domain.AIResponse{Response: answer, InteractionType: domain.InteractionTypeQuestion}, nil
}

func (s *InsightService) Recommendations(ctx context.Context, businessID, focusArea string) (domain.Recommendations, error) {
	if focusArea == "" {
		focusArea = DefaultFocusArea
	}

	business, err := s.findBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	recommendations, err := s.gemini.Recommendations(ctx, business.Profile(), focusArea)
	if err != nil {
		return nil, aiError(err)
	}

	query := fmt.Sprintf("Recommendations request (focus: %s)", focusArea)
	if err := s.record(ctx, businessID, query, encodeResponse(recommendations), domain.InteractionTypeRecommendations); err != nil {
		return nil, err
	}

	return recommendations, nil
}

// History lista as interações mais recentes primeiro; limit zero devolve todas
func (s *InsightService) History(ctx context.Context, businessID string, limit uint64) ([]domain.HistoryEntry, error) {
	interactions, err := s.interactionRepo.ListByBusiness(ctx, businessID, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("business_id", businessID).Error("Erro ao buscar histórico de interações")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error getting interaction history")
	}

	history := make([]domain.HistoryEntry, 0, len(interactions))
	for _, interaction := range interactions {
		history = append(history, interaction.ToHistoryEntry())
	}

	return history, nil
}

func (s *InsightService) findBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidIdentifier) {
			return nil, NewInsightError(ErrInvalidIdentifier, apiErrors.ErrInvalidIdentifier, "Invalid business ID format")
		}
		log.ForContext(ctx).WithError(err).WithField("business_id", businessID).Error("Erro ao buscar negócio")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error getting business")
	}

	if business == nil {
		return nil, NewInsightError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, "Business not found")
	}

	return business, nil
}

// record grava a troca no histórico; uma falha aqui derruba a requisição
func (s *InsightService) record(ctx context.Context, businessID, query, response string, interactionType domain.InteractionType) error {
	_, err := s.interactionRepo.Create(ctx, &domain.Interaction{
		BusinessID:      businessID,
		Query:           query,
		Response:        response,
		InteractionType: interactionType,
		Timestamp:       s.now(),
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"business_id": businessID,
			"operation":   string(interactionType),
		}).Error("Erro ao gravar interação")
		return NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error storing interaction")
	}

	return nil
}

func aiError(err error) error {
	return &InsightError{
		Err:     fmt.Errorf("%w: %v", ErrAIService, err),
		Code:    apiErrors.ErrExternalService,
		Details: "Error generating AI response",
	}
}

// encodeResponse serializa respostas estruturadas para o histórico
func encodeResponse(value any) string {
	encoded, err := json.MarshalToString(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return encoded
}
