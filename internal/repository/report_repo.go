package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"auditly-backend/internal/models"
)

// ReportRepo reads audit reports. The audit pipeline owns writes; the chat
// service never mutates this table.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// FindByID loads one report. Returns models.ErrReportNotFound when the id has
// no matching row; module JSONB columns that are NULL scan to nil pointers.
func (r *ReportRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `SELECT id, url, health_score, grade, risk_level,
		performance, seo, ux, content, ai_insights, created_at
		FROM reports WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.URL, &report.HealthScore, &report.Grade, &report.RiskLevel,
		&report.Performance, &report.SEO, &report.UX, &report.Content, &report.AIInsights,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}

	return report, nil
}
