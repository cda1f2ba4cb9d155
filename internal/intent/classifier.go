// Package intent scores a chat message against static keyword and pattern
// tables to decide whether the user is asking about their own audit report,
// about a general web concept, or just chatting. Single-shot, no state, no
// learning; the tables in tables.go are the whole configuration.
package intent

import (
	"strings"

	"auditly-backend/internal/models"
)

// Detect classifies one message. hasReportContext reports whether the caller
// has an audit report loaded; it breaks ties in favor of report intent and
// strengthens Core Web Vitals acronym matches. Pure function of its inputs.
func Detect(message string, hasReportContext bool) models.IntentResult {
	text := strings.ToLower(strings.TrimSpace(message))

	reportScore := 0
	conceptScore := 0

	ownership := ownershipPronounRe.MatchString(text) && ownershipSubjectRe.MatchString(text)
	if ownership {
		reportScore += ownershipWeight
	}

	for _, kw := range reportKeywords {
		if strings.Contains(text, kw) {
			reportScore += reportKeywordWeight
		}
	}

	if cwvAcronymRe.MatchString(text) {
		if hasReportContext || ownership {
			reportScore += cwvStrongWeight
		} else {
			reportScore += cwvWeakWeight
		}
	}

	for _, op := range conceptOpeners {
		if op.re.MatchString(text) && (op.exclude == nil || !op.exclude.MatchString(text)) {
			conceptScore += conceptOpenerWeight
		}
	}

	for _, term := range conceptTerms {
		if strings.Contains(text, term) {
			conceptScore += conceptTermWeight
		}
	}

	switch {
	case reportScore >= reportThreshold:
		return models.IntentResult{Intent: models.ReportIntent, Confidence: 0.95}
	case conceptScore >= conceptThreshold:
		return models.IntentResult{Intent: models.ConceptIntent, Confidence: 0.9}
	case reportScore >= weakReportThreshold:
		if hasReportContext {
			return models.IntentResult{Intent: models.ReportIntent, Confidence: 0.7}
		}
		return models.IntentResult{Intent: models.ConceptIntent, Confidence: 0.6}
	default:
		return models.IntentResult{Intent: models.GeneralIntent, Confidence: 0.5}
	}
}

// DetectSources maps a message to the audit module tags it likely concerns.
// Computed from the raw message only, never from the model reply, so the UI
// badge is stable even when the model wanders. Falls back to "overview".
func DetectSources(message string) []string {
	var tags []string
	for _, st := range sourceTags {
		if st.re.MatchString(message) {
			tags = append(tags, st.tag)
		}
	}
	if len(tags) == 0 {
		return []string{"overview"}
	}
	return tags
}
