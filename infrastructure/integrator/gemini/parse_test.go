package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

func TestExtractJSONCandidate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Bloco json",
			text:     "Segue o plano:\n```json\n{\"a\": 1}\n```\nBoa sorte",
			expected: `{"a": 1}`,
		},
		{
			name:     "Bloco simples",
			text:     "```\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "Bloco json tem prioridade sobre bloco simples anterior",
			text:     "```\nignorado\n``` e ```json\n{\"b\": 2}\n```",
			expected: `{"b": 2}`,
		},
		{
			name:     "Sem blocos usa o texto inteiro",
			text:     "  {\"c\": 3}  \n",
			expected: `{"c": 3}`,
		},
		{
			name:     "Bloco sem fechamento",
			text:     "```json\n{\"d\": 4}",
			expected: `{"d": 4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONCandidate(tt.text))
		})
	}
}

func TestParseGrowthPlan(t *testing.T) {
	t.Run("Objeto JSON em bloco", func(t *testing.T) {
		plan, ok := ParseGrowthPlan("```json\n{\"revenue\": {\"priority\": \"high\"}}\n```")

		assert.True(t, ok)
		assert.Equal(t, map[string]any{"revenue": map[string]any{"priority": "high"}}, plan)
	})

	t.Run("Texto livre devolve a resposta original", func(t *testing.T) {
		text := "Foque em marketing digital nos próximos meses."
		plan, ok := ParseGrowthPlan(text)

		assert.False(t, ok)
		assert.Equal(t, map[string]any{"raw_response": text}, plan)
	})

	t.Run("Lista de etapas em bloco é mantida", func(t *testing.T) {
		plan, ok := ParseGrowthPlan("```json\n[{\"category\": \"Marketing\", \"actions\": [\"Instagram\"]}, {\"category\": \"Vendas\"}]\n```")

		assert.True(t, ok)
		assert.Equal(t, []any{
			map[string]any{"category": "Marketing", "actions": []any{"Instagram"}},
			map[string]any{"category": "Vendas"},
		}, plan)
	})

	t.Run("Valor escalar também é JSON válido", func(t *testing.T) {
		plan, ok := ParseGrowthPlan("42")

		assert.True(t, ok)
		assert.Equal(t, float64(42), plan)
	})

	t.Run("JSON inválido em bloco mantém o texto completo", func(t *testing.T) {
		text := "```json\n{quebrado\n```"
		plan, ok := ParseGrowthPlan(text)

		assert.False(t, ok)
		assert.Equal(t, map[string]any{"raw_response": text}, plan)
	})
}

func TestParseRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		expectedOK bool
		validate   func(t *testing.T, recommendations domain.Recommendations)
	}{
		{
			name:       "Array de recomendações",
			text:       "```json\n[{\"title\": \"Anúncios\", \"priority\": \"high\"}, {\"title\": \"Fidelidade\"}]\n```",
			expectedOK: true,
			validate: func(t *testing.T, recommendations domain.Recommendations) {
				require.Len(t, recommendations, 2)
				assert.Equal(t, map[string]any{"title": "Anúncios", "priority": "high"}, recommendations[0])
			},
		},
		{
			name:       "Objeto com chave recommendations",
			text:       `{"recommendations": [{"title": "Preços"}]}`,
			expectedOK: true,
			validate: func(t *testing.T, recommendations domain.Recommendations) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, map[string]any{"title": "Preços"}, recommendations[0])
			},
		},
		{
			name:       "Objeto solto vira lista de um item",
			text:       `{"title": "Parcerias"}`,
			expectedOK: true,
			validate: func(t *testing.T, recommendations domain.Recommendations) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, map[string]any{"title": "Parcerias"}, recommendations[0])
			},
		},
		{
			name:       "Texto livre usa a recomendação padrão",
			text:       "Invista em redes sociais.",
			expectedOK: false,
			validate: func(t *testing.T, recommendations domain.Recommendations) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, domain.Recommendation{
					Title:       "AI Response",
					Description: "Invista em redes sociais.",
					Priority:    "medium",
					Category:    "general",
					ActionItems: []string{},
				}, recommendations[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendations, ok := ParseRecommendations(tt.text)

			assert.Equal(t, tt.expectedOK, ok)
			tt.validate(t, recommendations)
		})
	}
}
