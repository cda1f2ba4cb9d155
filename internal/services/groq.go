package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"auditly-backend/internal/models"
	"auditly-backend/internal/prompt"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.3-70b-versatile"
)

// GroqGateway calls Groq through its OpenAI-compatible chat completions API.
type GroqGateway struct {
	client    openai.Client
	modelName string
}

func NewGroqGateway(apiKey, modelName string) *GroqGateway {
	if modelName == "" {
		modelName = defaultGroqModel
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqGateway{client: client, modelName: modelName}
}

func (g *GroqGateway) Call(ctx context.Context, systemInstruction, userPrompt string, history []models.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemInstruction))
	for _, turn := range history {
		if turn.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(turn.Text))
		} else {
			messages = append(messages, openai.UserMessage(turn.Text))
		}
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.modelName),
		Messages:    messages,
		Temperature: openai.Float(modelTemperature),
		TopP:        openai.Float(modelTopP),
		MaxTokens:   openai.Int(modelMaxTokens),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			switch apierr.StatusCode {
			case 401, 403:
				return credentialErrorReply, nil
			case 429:
				return rateLimitReply, nil
			}
		}
		if reply, ok := translateVendorError(err); ok {
			return reply, nil
		}
		return "", fmt.Errorf("groq chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return prompt.EmptyReplyFallback, nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return prompt.EmptyReplyFallback, nil
	}
	return text, nil
}
