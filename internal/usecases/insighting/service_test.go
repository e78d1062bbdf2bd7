package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini"
	geminimocks "github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const businessID = "88888888-8888-8888-8888-888888888888"

var (
	fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	business = &domain.Business{ID: businessID, Name: "Loja", Industry: "retail", Description: "Roupas"}
)

type testDeps struct {
	businessRepo    *mocks.MockBusinessRepository
	metricRepo      *mocks.MockMetricRepository
	interactionRepo *mocks.MockInteractionRepository
	gemini          *geminimocks.MockGeminiIntegrator
}

func newTestService(t *testing.T) (*InsightService, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		businessRepo:    mocks.NewMockBusinessRepository(ctrl),
		metricRepo:      mocks.NewMockMetricRepository(ctrl),
		interactionRepo: mocks.NewMockInteractionRepository(ctrl),
		gemini:          geminimocks.NewMockGeminiIntegrator(ctrl),
	}

	svc := NewInsightService(deps.businessRepo, deps.metricRepo, deps.interactionRepo, deps.gemini).(*InsightService)
	svc.now = func() time.Time { return fixedNow }

	return svc, deps
}

// expectInteraction confere o que foi gravado no histórico
func expectInteraction(t *testing.T, deps *testDeps, query, response string, interactionType domain.InteractionType) {
	deps.interactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *domain.Interaction) (*domain.Interaction, error) {
			assert.Equal(t, businessID, i.BusinessID)
			assert.Equal(t, query, i.Query)
			assert.Equal(t, response, i.Response)
			assert.Equal(t, interactionType, i.InteractionType)
			assert.Equal(t, fixedNow, i.Timestamp)
			i.ID = "i1"
			return i, nil
		})
}

func assertInsightCode(t *testing.T, err error, base error, code string) {
	t.Helper()

	var insightErr *InsightError
	require.True(t, errors.As(err, &insightErr), "esperava InsightError, recebeu %v", err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, code, insightErr.Code)
}

func TestInsightService_Insights(t *testing.T) {
	ctx := context.Background()

	t.Run("Negócio existente - grava interação", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.gemini.EXPECT().BusinessInsights(gomock.Any(), business.Profile()).Return("insights", nil)
		expectInteraction(t, deps, "Business insights request", "insights", domain.InteractionTypeInsight)

		resp, err := svc.Insights(ctx, businessID)
		require.NoError(t, err)
		assert.Equal(t, &domain.AIResponse{Response: "insights", InteractionType: domain.InteractionTypeInsight}, resp)
	})

	t.Run("Id malformado - 400 sem chamar o modelo", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), "xyz").Return(nil, repository.ErrInvalidIdentifier)

		_, err := svc.Insights(ctx, "xyz")
		assertInsightCode(t, err, ErrInvalidIdentifier, apiErrors.ErrInvalidIdentifier)
	})

	t.Run("Negócio inexistente - 404", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(nil, nil)

		_, err := svc.Insights(ctx, businessID)
		assertInsightCode(t, err, ErrBusinessNotFound, apiErrors.ErrBusinessNotFound)
	})

	t.Run("Falha no modelo - erro de serviço externo sem gravar histórico", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.gemini.EXPECT().BusinessInsights(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

		_, err := svc.Insights(ctx, businessID)
		assertInsightCode(t, err, ErrAIService, apiErrors.ErrExternalService)
	})

	t.Run("Falha ao gravar histórico - erro de banco", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.gemini.EXPECT().BusinessInsights(gomock.Any(), gomock.Any()).Return("insights", nil)
		deps.interactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disco cheio"))

		_, err := svc.Insights(ctx, businessID)
		assertInsightCode(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestInsightService_AnalyzeMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Sem métricas - 404", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.metricRepo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return([]*domain.Metric{}, nil)

		_, err := svc.AnalyzeMetrics(ctx, businessID)
		assertInsightCode(t, err, ErrNoMetricsFound, apiErrors.ErrMetricsNotFound)
	})

	t.Run("Com métricas - envia amostras ao modelo", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.metricRepo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return([]*domain.Metric{
			{MetricType: domain.MetricTypeRevenue, Value: 100, Period: "2024-01"},
		}, nil)
		deps.gemini.EXPECT().AnalyzeMetrics(gomock.Any(), []domain.MetricSample{
			{MetricType: domain.MetricTypeRevenue, Value: 100, Period: "2024-01"},
		}).Return("análise", nil)
		expectInteraction(t, deps, "Metrics analysis request", "análise", domain.InteractionTypeAnalysis)

		resp, err := svc.AnalyzeMetrics(ctx, businessID)
		require.NoError(t, err)
		assert.Equal(t, domain.InteractionTypeAnalysis, resp.InteractionType)
	})
}

func TestInsightService_GrowthPlan(t *testing.T) {
	svc, deps := newTestService(t)
	plan := map[string]any{"goals": []any{"crescer"}}

	deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
	deps.gemini.EXPECT().GrowthPlan(gomock.Any(), business.Profile(), "6 months").Return(plan, nil)
	expectInteraction(t, deps, "Growth plan request (6 months)", `{"goals":["crescer"]}`, domain.InteractionTypeGrowthPlan)

	result, err := svc.GrowthPlan(context.Background(), businessID, "")
	require.NoError(t, err)
	assert.Equal(t, plan, result)
}

func TestInsightService_Recommendations(t *testing.T) {
	svc, deps := newTestService(t)
	recommendations := domain.Recommendations{map[string]any{"title": "A"}}

	deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
	deps.gemini.EXPECT().Recommendations(gomock.Any(), business.Profile(), "marketing").Return(recommendations, nil)
	expectInteraction(t, deps, "Recommendations request (focus: marketing)", `[{"title":"A"}]`, domain.InteractionTypeRecommendations)

	result, err := svc.Recommendations(context.Background(), businessID, "marketing")
	require.NoError(t, err)
	assert.Equal(t, recommendations, result)
}

func TestInsightService_MarketInsights(t *testing.T) {
	svc, deps := newTestService(t)
	deps.gemini.EXPECT().MarketInsights(gomock.Any(), "retail", "").Return("mercado", nil)

	result, err := svc.MarketInsights(context.Background(), "retail")
	require.NoError(t, err)
	assert.Equal(t, &domain.MarketInsights{Industry: "retail", Insights: "mercado"}, result)
}

func TestInsightService_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("Pergunta com contexto extra", func(t *testing.T) {
		svc, deps := newTestService(t)
		request := &domain.AskRequest{BusinessID: businessID, Query: "Como crescer?", Context: map[string]any{"budget": 1000}}

		deps.businessRepo.EXPECT().GetByID(gomock.Any(), businessID).Return(business, nil)
		deps.gemini.EXPECT().
			AnswerQuestion(gomock.Any(), "Como crescer?", gemini.BuildQuestionContext(business.Profile(), request.Context)).
			Return("resposta", nil)
		expectInteraction(t, deps, "Como crescer?", "resposta", domain.InteractionTypeQuestion)

		resp, err := svc.Ask(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "resposta", resp.Response)
	})

	t.Run("Pergunta vazia - 400", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Ask(ctx, &domain.AskRequest{BusinessID: businessID})
		assertInsightCode(t, err, ErrMissingQuery, apiErrors.ErrMissingRequiredData)
	})
}

func TestInsightService_History(t *testing.T) {
	svc, deps := newTestService(t)
	deps.interactionRepo.EXPECT().ListByBusiness(gomock.Any(), businessID, uint64(10)).Return([]*domain.Interaction{
		{ID: "2", Query: "q2", Response: "r2", InteractionType: domain.InteractionTypeQuestion, Timestamp: fixedNow},
		{ID: "1", Query: "q1", Response: "r1", InteractionType: domain.InteractionTypeInsight, Timestamp: fixedNow.Add(-time.Hour)},
	}, nil)

	history, err := svc.History(context.Background(), businessID, DefaultHistoryLimit)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2", history[0].ID)
	assert.Equal(t, domain.InteractionTypeInsight, history[1].Type)
}

func TestInsightService_History_LimiteZeroNaoLimita(t *testing.T) {
	svc, deps := newTestService(t)
	deps.interactionRepo.EXPECT().ListByBusiness(gomock.Any(), businessID, uint64(0)).Return([]*domain.Interaction{}, nil)

	history, err := svc.History(context.Background(), businessID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}
