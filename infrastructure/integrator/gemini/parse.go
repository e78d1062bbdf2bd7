package gemini

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// ExtractJSONCandidate isola o trecho que deve conter JSON na resposta do modelo.
// Procura primeiro um bloco ```json, depois um bloco ``` simples; sem blocos usa o texto inteiro.
func ExtractJSONCandidate(text string) string {
	if start := strings.Index(text, jsonFence); start >= 0 {
		return strings.TrimSpace(untilFence(text[start+len(jsonFence):]))
	}

	if start := strings.Index(text, fence); start >= 0 {
		return strings.TrimSpace(untilFence(text[start+len(fence):]))
	}

	return strings.TrimSpace(text)
}

// untilFence corta no próximo fechamento; sem fechamento, mantém o resto
func untilFence(text string) string {
	if end := strings.Index(text, fence); end >= 0 {
		return text[:end]
	}
	return text
}

// ParseGrowthPlan decodifica qualquer valor JSON da resposta. Se não houver JSON válido,
// devolve {"raw_response": texto original} e false.
func ParseGrowthPlan(text string) (domain.GrowthPlan, bool) {
	candidate := ExtractJSONCandidate(text)
	if !gjson.Valid(candidate) {
		return rawGrowthPlan(text), false
	}

	var plan any
	if err := json.Unmarshal([]byte(candidate), &plan); err != nil {
		return rawGrowthPlan(text), false
	}

	return plan, true
}

// ParseRecommendations aceita um array, um objeto com a chave "recommendations"
// ou qualquer outro valor JSON (embrulhado em uma lista). Se não houver JSON válido,
// devolve uma recomendação padrão com o texto original e false.
func ParseRecommendations(text string) (domain.Recommendations, bool) {
	candidate := ExtractJSONCandidate(text)
	if !gjson.Valid(candidate) {
		return defaultRecommendations(text), false
	}

	parsed := gjson.Parse(candidate)
	if parsed.IsObject() {
		if nested := parsed.Get("recommendations"); nested.Exists() {
			parsed = nested
		}
	}

	if parsed.IsArray() {
		var recommendations domain.Recommendations
		if err := json.Unmarshal([]byte(parsed.Raw), &recommendations); err != nil {
			return defaultRecommendations(text), false
		}
		return recommendations, true
	}

	var single any
	if err := json.Unmarshal([]byte(parsed.Raw), &single); err != nil {
		return defaultRecommendations(text), false
	}

	return domain.Recommendations{single}, true
}

func rawGrowthPlan(text string) domain.GrowthPlan {
	return map[string]any{"raw_response": text}
}

func defaultRecommendations(text string) domain.Recommendations {
	return domain.Recommendations{
		domain.Recommendation{
			Title:       "AI Response",
			Description: text,
			Priority:    "medium",
			Category:    "general",
			ActionItems: []string{},
		},
	}
}
