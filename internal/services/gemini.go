package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"auditly-backend/internal/models"
	"auditly-backend/internal/prompt"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiGateway calls the Gemini chat API. The client is constructed in main
// and injected so tests can run without one and so no package-level state
// holds a credential.
type GeminiGateway struct {
	client    *genai.Client
	modelName string
}

func NewGeminiGateway(client *genai.Client, modelName string) *GeminiGateway {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiGateway{client: client, modelName: modelName}
}

func (g *GeminiGateway) Call(ctx context.Context, systemInstruction, userPrompt string, history []models.ChatMessage) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	model.SetTemperature(modelTemperature)
	model.SetTopP(modelTopP)
	model.SetMaxOutputTokens(modelMaxTokens)

	session := model.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(userPrompt))
	if err != nil {
		if reply, ok := translateVendorError(err); ok {
			return reply, nil
		}
		return "", fmt.Errorf("gemini chat error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return prompt.EmptyReplyFallback, nil
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
