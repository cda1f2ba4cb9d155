package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditly-backend/internal/models"
)

type fakeFinder struct {
	reports map[uuid.UUID]*models.Report
	err     error
}

func (f *fakeFinder) FindByID(_ context.Context, id uuid.UUID) (*models.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.reports[id]
	if !ok {
		return nil, models.ErrReportNotFound
	}
	return r, nil
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func b(v bool) *bool         { return &v }
func s(v string) *string     { return &v }

func fullReport(id uuid.UUID) *models.Report {
	return &models.Report{
		ID:          id,
		URL:         "https://example.com",
		HealthScore: f64(72),
		Grade:       s("B"),
		RiskLevel:   s("medium"),
		Performance: &models.PerformanceModule{
			Score: f64(65), LCP: f64(3.1), CLS: f64(0.05), FCP: f64(1.2), TTFB: f64(850), TBT: f64(150),
			Issues: []models.Issue{{Title: "Large hero image", Description: "The hero image is 4MB", Severity: "high"}},
			Fixes:  []models.Fix{{Title: "Compress images", Description: "Serve WebP under 200KB", Priority: "high"}},
		},
		SEO: &models.SEOModule{
			Score: f64(70), MetaTitle: s("Example"), H1Count: i(1), ImagesMissingAlt: i(12),
		},
		UX:      &models.UXModule{Score: f64(80), MobileFriendly: b(true)},
		Content: &models.ContentModule{Score: f64(75), WordCount: i(430)},
		AIInsights: &models.AIInsights{
			Summary:   s("Solid site held back by heavy images."),
			Strengths: []string{"Fast server response"},
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderFullContext_SectionOrderRoundTrip(t *testing.T) {
	id := uuid.New()
	text := renderFullContext(fullReport(id))

	headers := []string{"## OVERVIEW", "## PERFORMANCE", "## SEO", "## UX", "## CONTENT", "## AI INSIGHTS"}

	assert.Equal(t, len(headers), strings.Count(text, "## "), "exactly one section per present module plus overview")

	last := -1
	for _, h := range headers {
		idx := strings.Index(text, h)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", h)
		assert.Greater(t, idx, last, "section %q out of order", h)
		last = idx
	}
}

func TestRenderFullContext_SkipsAbsentModules(t *testing.T) {
	id := uuid.New()
	r := fullReport(id)
	r.UX = nil
	r.AIInsights = nil

	text := renderFullContext(r)

	assert.NotContains(t, text, "## UX")
	assert.NotContains(t, text, "## AI INSIGHTS")
	assert.Contains(t, text, "## OVERVIEW")
	assert.Contains(t, text, "## PERFORMANCE")
	assert.Equal(t, 4, strings.Count(text, "## "))
}

func TestRenderFullContext_MissingFieldsRenderNA(t *testing.T) {
	r := &models.Report{
		URL:         "https://example.com",
		Performance: &models.PerformanceModule{Score: f64(65)},
		CreatedAt:   time.Now(),
	}

	text := renderFullContext(r)

	assert.Contains(t, text, "Health Score: N/A")
	assert.Contains(t, text, "Grade: N/A")
	assert.Contains(t, text, "LCP (Largest Contentful Paint): N/A (good < 2.5s, poor > 4.0s)")
	assert.Contains(t, text, "TTFB (Time To First Byte): N/A")
	// No issues/fixes collections -> no sub-blocks.
	assert.NotContains(t, text, "Issues Found:")
	assert.NotContains(t, text, "Recommended Fixes:")
}

func TestRenderFullContext_FindingsBlocks(t *testing.T) {
	text := renderFullContext(fullReport(uuid.New()))

	assert.Contains(t, text, "Issues Found:")
	assert.Contains(t, text, "1. [HIGH] Large hero image: The hero image is 4MB")
	assert.Contains(t, text, "Recommended Fixes:")
	assert.Contains(t, text, "1. Compress images: Serve WebP under 200KB")
	assert.Contains(t, text, "LCP (Largest Contentful Paint): 3.10s")
	assert.Contains(t, text, "TTFB (Time To First Byte): 850ms")
}

func TestRenderSummary_FourLineDigest(t *testing.T) {
	summary := renderSummary(fullReport(uuid.New()))
	lines := strings.Split(summary, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "URL: https://example.com", lines[0])
	assert.Equal(t, "Health Score: 72/100 (Grade B)", lines[1])
	assert.Equal(t, "Module Scores: performance 65/100, seo 70/100, ux 80/100, content 75/100", lines[2])
	assert.Equal(t, "Risk Level: MEDIUM", lines[3])
}

func TestBuildReportContext_NotFound(t *testing.T) {
	svc := NewReportContextService(&fakeFinder{reports: map[uuid.UUID]*models.Report{}}, nil)

	_, err := svc.BuildReportContext(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, models.ErrReportNotFound)

	_, err = svc.BuildReportContext(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrReportNotFound)
}

func TestBuildReportContext_RendersReport(t *testing.T) {
	id := uuid.New()
	svc := NewReportContextService(&fakeFinder{reports: map[uuid.UUID]*models.Report{id: fullReport(id)}}, nil)

	rc, err := svc.BuildReportContext(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", rc.URL)
	assert.Contains(t, rc.FullContext, "## OVERVIEW")
	assert.Contains(t, rc.ReportSummary, "Risk Level: MEDIUM")
}

func TestBuildReportSummary_NeverFails(t *testing.T) {
	svc := NewReportContextService(&fakeFinder{err: errors.New("connection refused")}, nil)
	assert.Equal(t, "", svc.BuildReportSummary(context.Background(), uuid.New().String()))

	svc = NewReportContextService(&fakeFinder{reports: map[uuid.UUID]*models.Report{}}, nil)
	assert.Equal(t, "", svc.BuildReportSummary(context.Background(), ""))
	assert.Equal(t, "", svc.BuildReportSummary(context.Background(), "garbage"))
	assert.Equal(t, "", svc.BuildReportSummary(context.Background(), uuid.New().String()))
}
