package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"auditly-backend/internal/models"
)

func TestDetect_OwnershipAlwaysWins(t *testing.T) {
	messages := []string{
		"Why is my score low?",
		"what is wrong with this website",
		"our site feels broken",
		"can you check the report again",
	}

	for _, msg := range messages {
		for _, hasReport := range []bool{true, false} {
			res := Detect(msg, hasReport)
			assert.Equal(t, models.ReportIntent, res.Intent, "message %q hasReport=%v", msg, hasReport)
			assert.Equal(t, 0.95, res.Confidence, "message %q", msg)
		}
	}
}

func TestDetect_ConceptQuestion(t *testing.T) {
	res := Detect("What is LCP?", false)
	assert.Equal(t, models.ConceptIntent, res.Intent)
	assert.Equal(t, 0.9, res.Confidence)

	res = Detect("Explain cumulative layout shift", false)
	assert.Equal(t, models.ConceptIntent, res.Intent)

	res = Detect("what is the difference between caching and compression", true)
	assert.Equal(t, models.ConceptIntent, res.Intent)
}

func TestDetect_WhyIsMyIsNotAConceptOpener(t *testing.T) {
	// "why is" followed by an ownership pronoun must not count as a concept
	// opener; the ownership heuristic routes it to report intent instead.
	res := Detect("Why is my score low?", false)
	assert.Equal(t, models.ReportIntent, res.Intent)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestDetect_SmallTalk(t *testing.T) {
	for _, msg := range []string{"hii", "hello there", "thanks!"} {
		res := Detect(msg, false)
		assert.Equal(t, models.GeneralIntent, res.Intent, "message %q", msg)
		assert.Equal(t, 0.5, res.Confidence)
	}
}

func TestDetect_WeakReportSignalTieBreak(t *testing.T) {
	// A couple of report keywords without ownership: report when a report is
	// loaded, concept otherwise.
	msg := "how to fix slow loading"

	withReport := Detect(msg, true)
	assert.Equal(t, models.ReportIntent, withReport.Intent)
	assert.Equal(t, 0.7, withReport.Confidence)

	withoutReport := Detect(msg, false)
	assert.Equal(t, models.ConceptIntent, withoutReport.Intent)
	assert.Equal(t, 0.6, withoutReport.Confidence)
}

func TestDetect_CWVAcronymBoost(t *testing.T) {
	// With a report loaded the acronym boost plus keywords reaches the strong
	// threshold; without one the weak boost stays below it.
	msg := "the lcp looks bad, can we improve the loading"

	withReport := Detect(msg, true)
	assert.Equal(t, models.ReportIntent, withReport.Intent)
	assert.Equal(t, 0.95, withReport.Confidence)

	withoutReport := Detect(msg, false)
	assert.NotEqual(t, 0.95, withoutReport.Confidence)
}

func TestDetectSources(t *testing.T) {
	sources := DetectSources("my images are missing alt text and LCP is slow")
	assert.Contains(t, sources, "seo")
	assert.Contains(t, sources, "performance")

	assert.Equal(t, []string{"overview"}, DetectSources("what do you think overall?"))

	assert.Equal(t, []string{"ux"}, DetectSources("is it mobile friendly enough"))
}

func TestTablesCompile(t *testing.T) {
	// The tables are data; keep their rough shape honest.
	assert.GreaterOrEqual(t, len(reportKeywords), 35)
	assert.GreaterOrEqual(t, len(conceptTerms), 20)
	assert.Len(t, conceptOpeners, 7)
	assert.Len(t, sourceTags, 4)
}
