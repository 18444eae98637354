package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/service"
)

// SeriesHandlers serves the per-session chart endpoints.
type SeriesHandlers struct {
	reports           *service.ReportService
	defaultBucketSize int
	logger            *zap.Logger
}

// NewSeriesHandlers returns handler struct.
func NewSeriesHandlers(reports *service.ReportService, defaultBucketSize int, logger *zap.Logger) *SeriesHandlers {
	return &SeriesHandlers{reports: reports, defaultBucketSize: defaultBucketSize, logger: logger}
}

// parseChannels splits a comma-separated channel list. Unknown names are
// reported instead of silently dropped so a UI typo is visible.
func parseChannels(raw string) ([]analytics.Channel, string) {
	if strings.TrimSpace(raw) == "" {
		return analytics.KnownChannels(), ""
	}
	parts := strings.Split(raw, ",")
	channels := make([]analytics.Channel, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		ch, ok := analytics.ParseChannel(name)
		if !ok {
			return nil, name
		}
		channels = append(channels, ch)
	}
	return channels, ""
}

func (h *SeriesHandlers) bucketSize(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("bucket_size")
	if raw == "" {
		return h.defaultBucketSize, nil
	}
	return strconv.Atoi(raw)
}

// Series handles GET /admin/session/series.
func (h *SeriesHandlers) Series(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	gameID, err := queryInt64(r, "game_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	channels, unknown := parseChannels(r.URL.Query().Get("channels"))
	if unknown != "" {
		writeError(w, http.StatusBadRequest, "unknown channel "+unknown)
		return
	}
	bucketSize, err := h.bucketSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bucket_size must be an integer")
		return
	}

	series, err := h.reports.SessionSeries(r.Context(), token, userID, gameID, channels, bucketSize)
	if err != nil {
		h.logger.Error("session series failed", zap.Int64("game_id", gameID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// Zoom handles GET /admin/session/zoom.
func (h *SeriesHandlers) Zoom(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	gameID, err := queryInt64(r, "game_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	channel, ok := analytics.ParseChannel(r.URL.Query().Get("channel"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown channel")
		return
	}
	center, err := strconv.ParseFloat(r.URL.Query().Get("center"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "center must be a number")
		return
	}
	bucketSize, err := h.bucketSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bucket_size must be an integer")
		return
	}

	window, err := h.reports.SessionZoom(r.Context(), token, userID, gameID, channel, center, bucketSize)
	if err != nil {
		h.logger.Error("session zoom failed", zap.Int64("game_id", gameID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, window)
}
