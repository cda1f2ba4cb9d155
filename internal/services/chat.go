package services

import (
	"context"
	"log/slog"

	"auditly-backend/internal/intent"
	"auditly-backend/internal/models"
	"auditly-backend/internal/prompt"
)

// Fixed replies for the paths that never reach a model.
const (
	noReportReply = "I don't see an audit report loaded yet. Run an audit or open one of your reports, then ask me about it — I can also answer general questions about web performance, SEO, UX and content."

	notConfiguredReply = "The AI assistant isn't set up yet: no model API key is configured. Set GEMINI_API_KEY or GROQ_API_KEY in the server environment to enable chat."

	apologyReply = "Sorry, something went wrong while answering that. Please try again in a moment."
)

// maxHistoryTurns bounds request size; older turns are dropped silently.
const maxHistoryTurns = 10

type contextBuilder interface {
	BuildReportContext(ctx context.Context, reportID string) (*models.ReportContext, error)
	BuildReportSummary(ctx context.Context, reportID string) string
}

// ChatService is the per-message pipeline: classify, optionally fetch and
// format report context, assemble the prompt, call the gateway. Stateless;
// exactly one model attempt per message, no retries.
type ChatService struct {
	contexts contextBuilder
	gateway  Gateway // nil when no vendor credential is configured
}

func NewChatService(contexts contextBuilder, gateway Gateway) *ChatService {
	return &ChatService{contexts: contexts, gateway: gateway}
}

// Chat answers one user message. It never returns an error: every internal
// failure degrades to a fixed plain-English reply with the detected intent
// preserved and sources empty.
func (s *ChatService) Chat(ctx context.Context, reportID, message string, history []models.ChatMessage) models.ChatResult {
	if s.gateway == nil {
		return models.ChatResult{Reply: notConfiguredReply, Intent: models.ErrorIntent, Sources: []string{}}
	}

	detected := intent.Detect(message, reportID != "")
	history = capHistory(history)

	var (
		reply   string
		sources []string
		err     error
	)
	switch detected.Intent {
	case models.ReportIntent:
		reply, sources, err = s.handleReport(ctx, reportID, message, history)
	case models.ConceptIntent:
		reply, err = s.handleConcept(ctx, reportID, message, history)
	default:
		reply, err = s.handleGeneral(ctx, message, history)
	}

	if err != nil {
		slog.Error("chat handler failed", "intent", detected.Intent, "error", err)
		return models.ChatResult{Reply: apologyReply, Intent: detected.Intent, Sources: []string{}}
	}

	if sources == nil {
		sources = []string{}
	}
	return models.ChatResult{Reply: reply, Intent: detected.Intent, Sources: sources}
}

// handleReport grounds the answer in the full report context. Without a
// report id it short-circuits to fixed guidance and never touches the
// gateway.
func (s *ChatService) handleReport(ctx context.Context, reportID, message string, history []models.ChatMessage) (string, []string, error) {
	if reportID == "" {
		return noReportReply, []string{}, nil
	}

	rc, err := s.contexts.BuildReportContext(ctx, reportID)
	if err != nil {
		return "", nil, err
	}

	system := prompt.SystemInstruction(models.ReportIntent)
	userTurn := prompt.UserTurn(models.ReportIntent, message, rc.FullContext, "")

	reply, err := s.gateway.Call(ctx, system, userTurn, history)
	if err != nil {
		return "", nil, err
	}

	return reply, intent.DetectSources(message), nil
}

func (s *ChatService) handleConcept(ctx context.Context, reportID, message string, history []models.ChatMessage) (string, error) {
	summary := ""
	if reportID != "" {
		summary = s.contexts.BuildReportSummary(ctx, reportID)
	}

	system := prompt.SystemInstruction(models.ConceptIntent)
	userTurn := prompt.UserTurn(models.ConceptIntent, message, "", summary)

	return s.gateway.Call(ctx, system, userTurn, history)
}

func (s *ChatService) handleGeneral(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	system := prompt.SystemInstruction(models.GeneralIntent)
	userTurn := prompt.UserTurn(models.GeneralIntent, message, "", "")

	return s.gateway.Call(ctx, system, userTurn, history)
}

// capHistory keeps the most recent turns, most-recent-last.
func capHistory(history []models.ChatMessage) []models.ChatMessage {
	if len(history) <= maxHistoryTurns {
		return history
	}
	return history[len(history)-maxHistoryTurns:]
}
