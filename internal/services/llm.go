package services

import (
	"context"
	"strings"

	"auditly-backend/internal/models"
)

// Gateway sends one assembled prompt to an LLM vendor and returns the reply
// text. History must already be capped by the caller; entries tagged
// "assistant" map to the vendor's model role, everything else to user.
// Implementations translate credential and rate-limit failures into
// user-safe reply strings and return any other vendor failure as an error.
type Gateway interface {
	Call(ctx context.Context, systemInstruction, userPrompt string, history []models.ChatMessage) (string, error)
}

// Fixed decoding parameters for every vendor. Replies are never streamed.
const (
	modelTemperature = 0.7
	modelTopP        = 1.0
	modelMaxTokens   = 2048
)

// User-facing strings for recognized vendor failures. Neither echoes any part
// of the credential or the raw vendor payload.
const (
	credentialErrorReply = "The AI assistant isn't configured correctly: the model API key looks invalid or missing. Please check the server configuration or contact support."
	rateLimitReply       = "The assistant is under high demand right now. Please try again in a moment."
)

// translateVendorError maps a vendor error to a user-facing reply by
// substring matching its message. Returns ok=false for anything it does not
// recognize; those bubble up to the orchestrator's catch-all.
func translateVendorError(err error) (string, bool) {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "invalid authentication"):
		return credentialErrorReply, true
	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "429"):
		return rateLimitReply, true
	}
	return "", false
}
