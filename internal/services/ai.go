package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultModel   = "gemma-3-4b-it"
)

// Generator issues a single prompt-in/text-out call to the hosted model.
// Every call may be slow and may fail; there is no retry anywhere behind it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiService talks to Gemini through its OpenAI-compatible endpoint.
type GeminiService struct {
	client *openai.Client
	model  string
}

func NewGeminiService(apiKey, baseURL, model string) *GeminiService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cfg.BaseURL = baseURL

	if model == "" {
		model = defaultModel
	}

	return &GeminiService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return resp.Choices[0].Message.Content, nil
}
