package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"text/template"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var prompts = template.Must(
	template.New("prompts").
		Funcs(template.FuncMap{"formatValue": formatValue}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

const (
	businessInsightsTemplate = "business_insights.tmpl"
	analyzeMetricsTemplate   = "analyze_metrics.tmpl"
	growthPlanTemplate       = "growth_plan.tmpl"
	marketInsightsTemplate   = "market_insights.tmpl"
	answerQuestionTemplate   = "answer_question.tmpl"
	recommendationsTemplate  = "recommendations.tmpl"
)

// ContextEntry é uma linha "chave: valor" do contexto enviado com a pergunta
type ContextEntry struct {
	Key   string
	Value string
}

// BuildQuestionContext monta o contexto da pergunta: nome, setor e descrição primeiro,
// depois as chaves extras em ordem alfabética. Chaves extras sobrescrevem as do perfil.
func BuildQuestionContext(profile domain.BusinessProfile, extra map[string]any) []ContextEntry {
	entries := []ContextEntry{
		{Key: "name", Value: profile.Name},
		{Key: "industry", Value: profile.Industry},
		{Key: "description", Value: profile.Description},
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fmt.Sprint(extra[key])

		replaced := false
		for i := range entries {
			if entries[i].Key == key {
				entries[i].Value = value
				replaced = true
				break
			}
		}

		if !replaced {
			entries = append(entries, ContextEntry{Key: key, Value: value})
		}
	}

	return entries
}

func renderPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "erro ao montar prompt %s", name)
	}
	return buf.String(), nil
}

// formatValue escreve inteiros sem casas decimais e os demais com a menor representação exata
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
