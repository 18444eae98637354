package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/service"
)

// ExportHandlers serves the session history download.
type ExportHandlers struct {
	reports *service.ReportService
	logger  *zap.Logger
}

// NewExportHandlers returns handler struct.
func NewExportHandlers(reports *service.ReportService, logger *zap.Logger) *ExportHandlers {
	return &ExportHandlers{reports: reports, logger: logger}
}

// Sessions handles GET /admin/member/sessions/export?user_id=N.
func (h *ExportHandlers) Sessions(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.reports.ExportSessions(r.Context(), token, userID)
	if err != nil {
		h.logger.Error("session export failed", zap.Int64("user_id", userID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeCSV(w, fmt.Sprintf("sessions_%d.csv", userID), text)
}
