package services

import (
	"fmt"
	"strings"

	"auditly-backend/internal/models"
)

// Report rendering. The overview section is always first; each module section
// appears only when its data exists, in the fixed order performance, seo, ux,
// content, ai insights. Every metric line is always present — missing values
// render as the literal "N/A" so contexts stay structurally identical across
// reports.

func renderFullContext(r *models.Report) string {
	sections := []string{renderOverview(r)}

	if r.Performance != nil {
		sections = append(sections, renderPerformance(r.Performance))
	}
	if r.SEO != nil {
		sections = append(sections, renderSEO(r.SEO))
	}
	if r.UX != nil {
		sections = append(sections, renderUX(r.UX))
	}
	if r.Content != nil {
		sections = append(sections, renderContent(r.Content))
	}
	if r.AIInsights != nil {
		sections = append(sections, renderAIInsights(r.AIInsights))
	}

	return strings.Join(sections, "\n\n")
}

// renderSummary is the 4-line digest: URL, health score/grade, module
// sub-scores, risk level.
func renderSummary(r *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "URL: %s\n", r.URL)
	fmt.Fprintf(&b, "Health Score: %s (Grade %s)\n", fmtScore(r.HealthScore), fmtString(r.Grade))

	perf, seo, ux, content := "N/A", "N/A", "N/A", "N/A"
	if r.Performance != nil {
		perf = fmtScore(r.Performance.Score)
	}
	if r.SEO != nil {
		seo = fmtScore(r.SEO.Score)
	}
	if r.UX != nil {
		ux = fmtScore(r.UX.Score)
	}
	if r.Content != nil {
		content = fmtScore(r.Content.Score)
	}
	fmt.Fprintf(&b, "Module Scores: performance %s, seo %s, ux %s, content %s\n", perf, seo, ux, content)
	fmt.Fprintf(&b, "Risk Level: %s", fmtUpper(r.RiskLevel))

	return b.String()
}

func renderOverview(r *models.Report) string {
	var b strings.Builder
	b.WriteString("## OVERVIEW\n")
	fmt.Fprintf(&b, "URL: %s\n", r.URL)
	fmt.Fprintf(&b, "Audited: %s\n", r.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Health Score: %s\n", fmtScore(r.HealthScore))
	fmt.Fprintf(&b, "Grade: %s\n", fmtString(r.Grade))
	fmt.Fprintf(&b, "Risk Level: %s", fmtUpper(r.RiskLevel))
	return b.String()
}

func renderPerformance(m *models.PerformanceModule) string {
	var b strings.Builder
	b.WriteString("## PERFORMANCE\n")
	fmt.Fprintf(&b, "Score: %s\n", fmtScore(m.Score))
	fmt.Fprintf(&b, "LCP (Largest Contentful Paint): %s (good < 2.5s, poor > 4.0s)\n", fmtSeconds(m.LCP))
	fmt.Fprintf(&b, "CLS (Cumulative Layout Shift): %s (good < 0.1, poor > 0.25)\n", fmtFloat(m.CLS, 3))
	fmt.Fprintf(&b, "FCP (First Contentful Paint): %s (good < 1.8s, poor > 3.0s)\n", fmtSeconds(m.FCP))
	fmt.Fprintf(&b, "TTFB (Time To First Byte): %s (good < 800ms, poor > 1800ms)\n", fmtMillis(m.TTFB))
	fmt.Fprintf(&b, "TBT (Total Blocking Time): %s (good < 200ms, poor > 600ms)", fmtMillis(m.TBT))
	writeFindings(&b, m.Issues, m.Fixes)
	return b.String()
}

func renderSEO(m *models.SEOModule) string {
	var b strings.Builder
	b.WriteString("## SEO\n")
	fmt.Fprintf(&b, "Score: %s\n", fmtScore(m.Score))
	fmt.Fprintf(&b, "Meta Title: %s\n", fmtString(m.MetaTitle))
	fmt.Fprintf(&b, "Meta Description: %s\n", fmtString(m.MetaDescription))
	fmt.Fprintf(&b, "H1 Count: %s\n", fmtInt(m.H1Count))
	fmt.Fprintf(&b, "Images Missing Alt Text: %s\n", fmtInt(m.ImagesMissingAlt))
	fmt.Fprintf(&b, "Internal Links: %s\n", fmtInt(m.InternalLinks))
	fmt.Fprintf(&b, "External Links: %s", fmtInt(m.ExternalLinks))
	writeFindings(&b, m.Issues, m.Fixes)
	return b.String()
}

func renderUX(m *models.UXModule) string {
	var b strings.Builder
	b.WriteString("## UX\n")
	fmt.Fprintf(&b, "Score: %s\n", fmtScore(m.Score))
	fmt.Fprintf(&b, "Mobile Friendly: %s\n", fmtBool(m.MobileFriendly))
	fmt.Fprintf(&b, "Viewport Configured: %s\n", fmtBool(m.ViewportConfigured))
	fmt.Fprintf(&b, "Tap Targets OK: %s\n", fmtBool(m.TapTargetsOK))
	fmt.Fprintf(&b, "Font Legibility: %s", fmtString(m.FontLegibility))
	writeFindings(&b, m.Issues, m.Fixes)
	return b.String()
}

func renderContent(m *models.ContentModule) string {
	var b strings.Builder
	b.WriteString("## CONTENT\n")
	fmt.Fprintf(&b, "Score: %s\n", fmtScore(m.Score))
	fmt.Fprintf(&b, "Word Count: %s\n", fmtInt(m.WordCount))
	fmt.Fprintf(&b, "Readability Score: %s\n", fmtFloat(m.ReadabilityScore, 1))
	fmt.Fprintf(&b, "Keyword Density: %s\n", fmtPercent(m.KeywordDensity))
	fmt.Fprintf(&b, "Duplicate Content: %s", fmtBool(m.DuplicateContent))
	writeFindings(&b, m.Issues, m.Fixes)
	return b.String()
}

func renderAIInsights(m *models.AIInsights) string {
	var b strings.Builder
	b.WriteString("## AI INSIGHTS\n")
	fmt.Fprintf(&b, "Summary: %s", fmtString(m.Summary))
	writeList(&b, "Strengths", m.Strengths)
	writeList(&b, "Weaknesses", m.Weaknesses)
	writeList(&b, "Recommendations", m.Recommendations)
	return b.String()
}

// writeFindings appends the numbered issue and fix sub-blocks, each only when
// its collection is non-empty. Severities are tagged in upper case.
func writeFindings(b *strings.Builder, issues []models.Issue, fixes []models.Fix) {
	if len(issues) > 0 {
		b.WriteString("\nIssues Found:")
		for i, issue := range issues {
			fmt.Fprintf(b, "\n%d. [%s] %s: %s", i+1, strings.ToUpper(issue.Severity), issue.Title, issue.Description)
		}
	}
	if len(fixes) > 0 {
		b.WriteString("\nRecommended Fixes:")
		for i, fix := range fixes {
			fmt.Fprintf(b, "\n%d. %s: %s", i+1, fix.Title, fix.Description)
		}
	}
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:", label)
	for i, item := range items {
		fmt.Fprintf(b, "\n%d. %s", i+1, item)
	}
}

// Value formatting. Nil always renders as "N/A".

func fmtScore(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.0f/100", *v)
}

func fmtSeconds(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *v)
}

func fmtMillis(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.0fms", *v)
}

func fmtFloat(v *float64, decimals int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

func fmtPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtBool(v *bool) string {
	if v == nil {
		return "N/A"
	}
	if *v {
		return "yes"
	}
	return "no"
}

func fmtString(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func fmtUpper(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return strings.ToUpper(*v)
}
