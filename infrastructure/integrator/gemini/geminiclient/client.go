package geminiclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/vfg2006/business-growth-api/internal/config"
)

// Client envia um prompt de texto ao modelo e devolve o texto gerado
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	llm   llms.Model
	model string
}

// NewClient cria o cliente do Google AI com o modelo fixo da configuração
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.Model),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Gemini")
	}

	return NewClientWithModel(llm, cfg.Gemini.Model), nil
}

func NewClientWithModel(llm llms.Model, model string) Client {
	return &GeminiClient{
		llm:   llm,
		model: model,
	}
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithModel(c.model))
	if err != nil {
		return "", errors.Wrapf(err, "erro ao gerar conteúdo com o modelo %s", c.model)
	}

	return text, nil
}
