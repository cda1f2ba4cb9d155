package models

// Intent labels returned by the classifier and echoed to the UI.
const (
	ReportIntent  = "REPORT_INTENT"
	ConceptIntent = "WEBSITE_CONCEPT_INTENT"
	GeneralIntent = "GENERAL_INTENT"
	ErrorIntent   = "ERROR"
)

// ChatMessage is a single conversation turn. Role is "user" or "assistant".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// IntentResult is the classifier's verdict for one message. Computed fresh
// per message, never stored.
type IntentResult struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ChatRequest is the payload sent to POST /api/chat.
type ChatRequest struct {
	ReportID string        `json:"reportId"`
	Message  string        `json:"message"`
	History  []ChatMessage `json:"history"`
}

// ChatResult is the response contract shared by the orchestrator and the
// HTTP layer. Sources names the audit modules the reply likely concerns.
type ChatResult struct {
	Reply   string   `json:"reply"`
	Intent  string   `json:"intent"`
	Sources []string `json:"sources"`
}

// ChatResponse is the HTTP envelope around a ChatResult.
type ChatResponse struct {
	Success bool     `json:"success"`
	Reply   string   `json:"reply"`
	Intent  string   `json:"intent"`
	Sources []string `json:"sources"`
}
