package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Groq exposes an OpenAI-compatible chat completions API.
const groqBaseURL = "https://api.groq.com/openai/v1"

// generationTimeout bounds the remote call; expiry is a transport failure.
const generationTimeout = 45 * time.Second

// GroqGenerationClient implements GenerationClientInterface against Groq's
// hosted models.
type GroqGenerationClient struct {
	client *openai.Client
	model  string
}

func NewGroqGenerationClient(apiKey, model string) GenerationClientInterface {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL

	return &GroqGenerationClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateTrip sends the prompt as a single-turn, single-message conversation
// with temperature 0.7 and returns the raw completion text. One attempt, no
// retry.
func (c *GroqGenerationClient) GenerateTrip(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: no completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}
