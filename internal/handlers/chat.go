package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"auditly-backend/internal/models"
)

type chatService interface {
	Chat(ctx context.Context, reportID, message string, history []models.ChatMessage) models.ChatResult
}

type ChatHandler struct {
	chat chatService
}

func NewChatHandler(chat chatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Ask handles POST /api/chat. The orchestrator never fails; anything that
// does go wrong below it already degraded to a plain-English reply, so the
// only error statuses here are input validation.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	result := h.chat.Chat(r.Context(), req.ReportID, req.Message, req.History)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Success: true,
		Reply:   result.Reply,
		Intent:  result.Intent,
		Sources: result.Sources,
	})
}
