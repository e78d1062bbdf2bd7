package domain

import "time"

type InteractionType string

const (
	InteractionTypeInsight         InteractionType = "insight"
	InteractionTypeAnalysis        InteractionType = "analysis"
	InteractionTypeGrowthPlan      InteractionType = "growth_plan"
	InteractionTypeQuestion        InteractionType = "question"
	InteractionTypeRecommendations InteractionType = "recommendations"
)

// Interaction é o registro de uma troca com o modelo de IA
type Interaction struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"business_id"`
	Query           string          `json:"query"`
	Response        string          `json:"response"`
	InteractionType InteractionType `json:"interaction_type"`
	Timestamp       time.Time       `json:"timestamp"`
}

type HistoryEntry struct {
	ID        string          `json:"id"`
	Query     string          `json:"query"`
	Response  string          `json:"response"`
	Type      InteractionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}

func (i *Interaction) ToHistoryEntry() HistoryEntry {
	return HistoryEntry{
		ID:        i.ID,
		Query:     i.Query,
		Response:  i.Response,
		Type:      i.InteractionType,
		Timestamp: i.Timestamp,
	}
}

type AIResponse struct {
	Response        string          `json:"response"`
	InteractionType InteractionType `json:"interaction_type"`
}

type AskRequest struct {
	BusinessID string         `json:"business_id"`
	Query      string         `json:"query"`
	Context    map[string]any `json:"context,omitempty"`
}

type MarketInsights struct {
	Industry string `json:"industry"`
	Insights string `json:"insights"`
}

// GrowthPlan é o valor JSON devolvido pelo modelo, sem esquema fixo (objeto, lista ou
// {"raw_response": texto} quando a resposta não é JSON)
type GrowthPlan any

// Recommendation é o formato padrão de uma recomendação
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	ActionItems []string `json:"action_items"`
}

// Recommendations guarda os itens como vieram do modelo (objetos ou valores soltos)
type Recommendations []any
