package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"auditly-backend/internal/models"
)

type reportFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
}

type ReportHandler struct {
	reports reportFinder
}

func NewReportHandler(reports reportFinder) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Get handles GET /api/reports/{id}. The widget uses it to show the header
// of the loaded report next to the chat.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.reports.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrReportNotFound) {
			writeError(w, http.StatusNotFound, "Report not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
