package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/analytics"
	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/service"
)

// ChartSocketHandler serves the interactive session chart over a websocket.
// The browser keeps one connection open per session page; slider drags and
// zoom clicks arrive as messages and the re-smoothed chart goes back on the
// same connection. Every request carries a client sequence number that is
// echoed verbatim so the client can drop responses that a faster drag has
// already superseded.
type ChartSocketHandler struct {
	reports           *service.ReportService
	defaultBucketSize int
	logger            *zap.Logger
	upgrader          websocket.Upgrader
}

// NewChartSocketHandler returns handler struct.
func NewChartSocketHandler(reports *service.ReportService, defaultBucketSize int, logger *zap.Logger) *ChartSocketHandler {
	return &ChartSocketHandler{
		reports:           reports,
		defaultBucketSize: defaultBucketSize,
		logger:            logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type chartRequest struct {
	Seq        int64    `json:"seq"`
	Type       string   `json:"type"`
	Channels   []string `json:"channels,omitempty"`
	BucketSize int      `json:"bucket_size,omitempty"`
	Channel    string   `json:"channel,omitempty"`
	Center     float64  `json:"center,omitempty"`
}

type chartResponse struct {
	Seq    int64              `json:"seq"`
	Type   string             `json:"type"`
	Series []analytics.Series `json:"series,omitempty"`
	Window *analytics.Window  `json:"window,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// Serve handles GET /admin/session/chart?user_id=N&game_id=M&token=...
func (h *ChartSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.UpstreamTokenFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gameID, err := queryInt64(r, "game_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("chart socket opened", zap.Int64("user_id", userID), zap.Int64("game_id", gameID))

	for {
		var req chartRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("chart socket read failed", zap.Error(err))
			}
			return
		}

		resp := h.handle(r, token, userID, gameID, req)
		if err := conn.WriteJSON(resp); err != nil {
			h.logger.Warn("chart socket write failed", zap.Error(err))
			return
		}
	}
}

func (h *ChartSocketHandler) handle(r *http.Request, token string, userID, gameID int64, req chartRequest) chartResponse {
	resp := chartResponse{Seq: req.Seq, Type: req.Type}

	bucketSize := req.BucketSize
	if bucketSize == 0 {
		bucketSize = h.defaultBucketSize
	}

	switch req.Type {
	case "series":
		channels := make([]analytics.Channel, 0, len(req.Channels))
		for _, name := range req.Channels {
			ch, ok := analytics.ParseChannel(name)
			if !ok {
				resp.Error = "unknown channel " + name
				return resp
			}
			channels = append(channels, ch)
		}
		if len(channels) == 0 {
			channels = analytics.KnownChannels()
		}
		series, err := h.reports.SessionSeries(r.Context(), token, userID, gameID, channels, bucketSize)
		if err != nil {
			h.logger.Error("chart series failed", zap.Int64("game_id", gameID), zap.Error(err))
			resp.Error = "series unavailable"
			return resp
		}
		resp.Series = series

	case "zoom":
		ch, ok := analytics.ParseChannel(req.Channel)
		if !ok {
			resp.Error = "unknown channel " + req.Channel
			return resp
		}
		window, err := h.reports.SessionZoom(r.Context(), token, userID, gameID, ch, req.Center, bucketSize)
		if err != nil {
			h.logger.Error("chart zoom failed", zap.Int64("game_id", gameID), zap.Error(err))
			resp.Error = "zoom unavailable"
			return resp
		}
		resp.Window = window

	default:
		resp.Error = "unknown request type"
	}
	return resp
}
