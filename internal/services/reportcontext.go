package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"auditly-backend/internal/models"
)

// ReportFinder is the read side of the reports table.
type ReportFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
}

const contextCacheTTL = 10 * time.Minute

// ReportContextService renders a stored audit report into the plain-text form
// the prompt assembler consumes. Rendered contexts are cached in Redis for a
// few minutes since users typically ask several questions about the same
// report; the cache is strictly best effort.
type ReportContextService struct {
	reports ReportFinder
	cache   *redis.Client // nil disables caching
}

func NewReportContextService(reports ReportFinder, cache *redis.Client) *ReportContextService {
	return &ReportContextService{reports: reports, cache: cache}
}

// BuildReportContext fetches and renders one report. An unknown or
// unparsable id yields models.ErrReportNotFound, propagated to the caller.
func (s *ReportContextService) BuildReportContext(ctx context.Context, reportID string) (*models.ReportContext, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, models.ErrReportNotFound
	}

	key := contextCacheKey(id)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var rc models.ReportContext
			if json.Unmarshal([]byte(raw), &rc) == nil {
				return &rc, nil
			}
		}
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rc := &models.ReportContext{
		FullContext:   renderFullContext(report),
		ReportSummary: renderSummary(report),
		URL:           report.URL,
	}

	if s.cache != nil {
		if data, err := json.Marshal(rc); err == nil {
			if err := s.cache.Set(ctx, key, data, contextCacheTTL).Err(); err != nil {
				slog.Debug("report context cache write failed", "report_id", reportID, "error", err)
			}
		}
	}

	return rc, nil
}

// BuildReportSummary renders the compact digest used as supplementary context
// in non-report flows. It must never fail the caller: any problem, including
// a falsy or malformed id, yields an empty string.
func (s *ReportContextService) BuildReportSummary(ctx context.Context, reportID string) string {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return ""
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		slog.Debug("report summary fetch failed", "report_id", reportID, "error", err)
		return ""
	}

	return renderSummary(report)
}

func contextCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("report_context:%s", id)
}
