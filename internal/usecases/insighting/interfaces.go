package insighting

import (
	"context"

	"github.com/vfg2006/business-growth-api/internal/domain"
)

// Insighter reúne as operações de IA expostas pela API.
// Toda operação ligada a um negócio grava a troca no histórico de interações.
type Insighter interface {
	Insights(ctx context.Context, businessID string) (*domain.AIResponse, error)
	AnalyzeMetrics(ctx context.Context, businessID string) (*domain.AIResponse, error)
	GrowthPlan(ctx context.Context, businessID, timeframe string) (domain.GrowthPlan, error)
	MarketInsights(ctx context.Context, industry string) (*domain.MarketInsights, error)
	Ask(ctx context.Context, request *domain.AskRequest) (*domain.AIResponse, error)
	Recommendations(ctx context.Context, businessID, focusArea string) (domain.Recommendations, error)
	History(ctx context.Context, businessID string, limit uint64) ([]domain.HistoryEntry, error)
}

// Valores usados quando a requisição não informa o parâmetro
const (
	DefaultTimeframe    = "6 months"
	DefaultFocusArea    = "general"
	DefaultHistoryLimit = 10
)
