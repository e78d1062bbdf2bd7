package geminiclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	for _, message := range messages {
		for _, part := range message.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.lastPrompt = text.Text
			}
		}
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestGeminiClient_Generate(t *testing.T) {
	model := &fakeModel{response: "resposta do modelo"}
	client := NewClientWithModel(model, "gemini-2.0-flash")

	text, err := client.Generate(context.Background(), "Qual o próximo passo?")

	require.NoError(t, err)
	assert.Equal(t, "resposta do modelo", text)
	assert.Equal(t, "Qual o próximo passo?", model.lastPrompt)
}

func TestGeminiClient_Generate_Erro(t *testing.T) {
	model := &fakeModel{err: errors.New("quota excedida")}
	client := NewClientWithModel(model, "gemini-2.0-flash")

	text, err := client.Generate(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gemini-2.0-flash")
	assert.Empty(t, text)
}
