package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/service"
)

// StatisticsHandlers serves a member's history, trend and ADHD overview pages.
type StatisticsHandlers struct {
	reports *service.ReportService
	logger  *zap.Logger
}

// NewStatisticsHandlers returns handler struct.
func NewStatisticsHandlers(reports *service.ReportService, logger *zap.Logger) *StatisticsHandlers {
	return &StatisticsHandlers{reports: reports, logger: logger}
}

// Sessions handles GET /admin/member/sessions?user_id=N.
func (h *StatisticsHandlers) Sessions(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.reports.MemberSessions(r.Context(), token, userID)
	if err != nil {
		h.logger.Error("session history failed", zap.Int64("user_id", userID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// Trends handles GET /admin/member/statistics?user_id=N.
func (h *StatisticsHandlers) Trends(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := h.reports.SessionTrends(r.Context(), token, userID)
	if err != nil {
		h.logger.Error("trend chart failed", zap.Int64("user_id", userID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// Bio handles GET /admin/member/bio?user_id=N.
func (h *StatisticsHandlers) Bio(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.reports.BioSummary(r.Context(), token, userID)
	if err != nil {
		h.logger.Error("bio summary failed", zap.Int64("user_id", userID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
