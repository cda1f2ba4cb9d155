package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a report id has no matching row.
var ErrReportNotFound = errors.New("report not found")

// Report is one audit report document. The audit pipeline writes these rows;
// this service only reads them. Module blobs are stored as JSONB and are nil
// when the corresponding audit module did not run.
type Report struct {
	ID          uuid.UUID          `json:"id"`
	URL         string             `json:"url"`
	HealthScore *float64           `json:"health_score"`
	Grade       *string            `json:"grade"`
	RiskLevel   *string            `json:"risk_level"`
	Performance *PerformanceModule `json:"performance"`
	SEO         *SEOModule         `json:"seo"`
	UX          *UXModule          `json:"ux"`
	Content     *ContentModule     `json:"content"`
	AIInsights  *AIInsights        `json:"ai_insights"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Issue is a single finding inside a module. Severity is free-form lowercase
// in the database ("high", "medium", "low").
type Issue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Fix is a recommended remediation for a module.
type Fix struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// PerformanceModule holds Core Web Vitals. LCP/FCP are seconds, TTFB/TBT are
// milliseconds, CLS is unitless.
type PerformanceModule struct {
	Score  *float64 `json:"score"`
	LCP    *float64 `json:"lcp"`
	CLS    *float64 `json:"cls"`
	FCP    *float64 `json:"fcp"`
	TTFB   *float64 `json:"ttfb"`
	TBT    *float64 `json:"tbt"`
	Issues []Issue  `json:"issues"`
	Fixes  []Fix    `json:"fixes"`
}

type SEOModule struct {
	Score            *float64 `json:"score"`
	MetaTitle        *string  `json:"meta_title"`
	MetaDescription  *string  `json:"meta_description"`
	H1Count          *int     `json:"h1_count"`
	ImagesMissingAlt *int     `json:"images_missing_alt"`
	InternalLinks    *int     `json:"internal_links"`
	ExternalLinks    *int     `json:"external_links"`
	Issues           []Issue  `json:"issues"`
	Fixes            []Fix    `json:"fixes"`
}

type UXModule struct {
	Score              *float64 `json:"score"`
	MobileFriendly     *bool    `json:"mobile_friendly"`
	ViewportConfigured *bool    `json:"viewport_configured"`
	TapTargetsOK       *bool    `json:"tap_targets_ok"`
	FontLegibility     *string  `json:"font_legibility"`
	Issues             []Issue  `json:"issues"`
	Fixes              []Fix    `json:"fixes"`
}

type ContentModule struct {
	Score            *float64 `json:"score"`
	WordCount        *int     `json:"word_count"`
	ReadabilityScore *float64 `json:"readability_score"`
	KeywordDensity   *float64 `json:"keyword_density"`
	DuplicateContent *bool    `json:"duplicate_content"`
	Issues           []Issue  `json:"issues"`
	Fixes            []Fix    `json:"fixes"`
}

// AIInsights is the free-text analysis block produced by the audit pipeline.
type AIInsights struct {
	Summary         *string  `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// ReportContext is the rendered, ephemeral text form of a report used to
// ground a model call. It lives for one request only.
type ReportContext struct {
	FullContext   string `json:"full_context"`
	ReportSummary string `json:"report_summary"`
	URL           string `json:"url"`
}
