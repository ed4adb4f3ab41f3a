package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sera-tools/sera-atlas/pkg/models/api"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	svcreport "github.com/sera-tools/sera-atlas/pkg/services/report"
	"github.com/sera-tools/sera-atlas/pkg/services/report/render"
)

const defaultDownloadFormat = render.FormatPDF

// Service is the report pipeline the handler drives.
type Service interface {
	Generate(ctx context.Context, req api.GenerateReportRequest) (*store.ReportRecord, error)
	Fetch(ctx context.Context, reportID string) (*store.ReportRecord, error)
}

type Handler struct {
	service   Service
	renderers *render.Registry
}

func NewHandler(service Service, renderers *render.Registry) *Handler {
	return &Handler{
		service:   service,
		renderers: renderers,
	}
}

// GenerateReport handles POST /reports.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	record, err := h.service.Generate(ctx, req)
	if err != nil {
		status, message := statusForError(err)
		logger.Error().Err(err).Msg("report generation failed")
		writeError(w, status, message)
		return
	}

	format := record.Format
	if format == "" {
		format = defaultDownloadFormat
	}

	response := api.GenerateReportResponse{
		Success:     true,
		ReportID:    record.ReportID,
		DownloadURL: fmt.Sprintf("/api/v1/reports/%s/download?format=%s", record.ReportID, format),
	}
	if record.Format == render.FormatJSON {
		response.ReportData = &record.Data
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("report_id", record.ReportID).Msg("failed to encode generate response")
	}
}

// DownloadReport handles GET /reports/{reportID}/download. The id only needs
// the "RPT-" prefix to reach the store; the format defaults to pdf, which is
// served as a printable HTML document.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reportID := chi.URLParam(r, "reportID")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = defaultDownloadFormat
	}

	record, err := h.service.Fetch(ctx, reportID)
	if err != nil {
		status, message := statusForError(err)
		logger.Warn().Err(err).Str("report_id", reportID).Msg("report fetch failed")
		writeError(w, status, message)
		return
	}

	renderer, err := h.renderers.ForFormat(format)
	if err != nil {
		status, message := statusForError(err)
		writeError(w, status, message)
		return
	}

	body, err := renderer.Render(*record)
	if err != nil {
		logger.Error().Err(err).
			Str("report_id", reportID).
			Str("format", format).
			Msg("report rendering failed")
		writeError(w, http.StatusInternalServerError, "Rapor işlenirken bir hata oluştu")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("sera-raporu-%s.%s", reportID, renderer.Extension())))
	if _, err := w.Write(body); err != nil {
		logger.Error().Err(err).Str("report_id", reportID).Msg("failed to write report body")
	}
}

// statusForError maps the domain error taxonomy to HTTP status codes and
// localized messages. Anything outside the taxonomy is an internal fault and
// stays opaque to the caller.
func statusForError(err error) (int, string) {
	var (
		validationErr  *svcreport.ValidationError
		identifierErr  *svcreport.InvalidIdentifierError
		notFoundErr    *svcreport.NotFoundError
		unsupportedErr *svcreport.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Zorunlu alanlar eksik"
	case errors.As(err, &identifierErr):
		return http.StatusBadRequest, "Geçersiz rapor kimliği"
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, "Rapor bulunamadı"
	case errors.As(err, &unsupportedErr):
		return http.StatusBadRequest, "Desteklenmeyen format"
	default:
		return http.StatusInternalServerError, "Rapor işlenirken bir hata oluştu"
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Success: false, Error: message})
}
