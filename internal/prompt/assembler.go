// Package prompt builds the system instruction and user turn sent to the
// model. One shared identity block plus a per-intent mode fragment; chat
// history is carried separately by the gateway.
package prompt

import (
	"strings"

	"auditly-backend/internal/models"
)

// SystemInstruction returns the full system prompt for an intent. Unknown
// intents get the general fragment.
func SystemInstruction(intent string) string {
	fragment, ok := modeFragments[intent]
	if !ok {
		fragment = modeFragments[models.GeneralIntent]
	}

	var b strings.Builder
	b.WriteString(coreIdentity)
	b.WriteString(fragment)
	b.WriteString(errorHandling)
	return b.String()
}

// UserTurn builds the user-role message for one request. fullContext is the
// rendered report (report intent only); reportSummary is the optional digest
// prepended for concept questions when a report is loaded.
func UserTurn(intent, question, fullContext, reportSummary string) string {
	switch intent {
	case models.ReportIntent:
		var b strings.Builder
		b.WriteString(reportDataHeader)
		b.WriteString("\n")
		b.WriteString(fullContext)
		b.WriteString("\n")
		b.WriteString(reportDataFooter)
		b.WriteString("\n\nUser question: ")
		b.WriteString(question)
		return b.String()
	case models.ConceptIntent:
		if reportSummary == "" {
			return question
		}
		return summaryBanner + "\n" + reportSummary + "\n\n" + question
	default:
		return question
	}
}
