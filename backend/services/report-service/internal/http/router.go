package httpserver

import (
	"net/http"

	"eyewave/backend/services/report-service/internal/http/handlers"
	"eyewave/backend/services/report-service/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	AuthHandlers       *handlers.AuthHandlers
	MembersHandlers    *handlers.MembersHandlers
	StatisticsHandlers *handlers.StatisticsHandlers
	SeriesHandlers     *handlers.SeriesHandlers
	ExportHandlers     *handlers.ExportHandlers
	ChartSocketHandler *handlers.ChartSocketHandler
	HealthHandler      http.HandlerFunc
}

// NewRouter wires HTTP routes with middleware.
func NewRouter(deps RouterDeps, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", method(http.MethodGet, deps.HealthHandler))

	mux.Handle("/admin/login", method(http.MethodPost, http.HandlerFunc(deps.AuthHandlers.Login)))

	authenticated := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, authMiddleware)
	}

	mux.Handle("/admin/logout", method(http.MethodPost, authenticated(deps.AuthHandlers.Logout)))
	mux.Handle("/admin/password", method(http.MethodPatch, authenticated(deps.AuthHandlers.ChangePassword)))

	mux.Handle("/admin/members", method(http.MethodGet, authenticated(deps.MembersHandlers.List)))
	mux.Handle("/admin/member", method(http.MethodGet, authenticated(deps.MembersHandlers.Detail)))
	mux.Handle("/admin/member/register", method(http.MethodPost, authenticated(deps.MembersHandlers.Register)))
	mux.Handle("/admin/member/withdraw", method(http.MethodDelete, authenticated(deps.MembersHandlers.Withdraw)))

	mux.Handle("/admin/member/sessions", method(http.MethodGet, authenticated(deps.StatisticsHandlers.Sessions)))
	mux.Handle("/admin/member/statistics", method(http.MethodGet, authenticated(deps.StatisticsHandlers.Trends)))
	mux.Handle("/admin/member/bio", method(http.MethodGet, authenticated(deps.StatisticsHandlers.Bio)))
	mux.Handle("/admin/member/sessions/export", method(http.MethodGet, authenticated(deps.ExportHandlers.Sessions)))

	mux.Handle("/admin/session/series", method(http.MethodGet, authenticated(deps.SeriesHandlers.Series)))
	mux.Handle("/admin/session/zoom", method(http.MethodGet, authenticated(deps.SeriesHandlers.Zoom)))
	mux.Handle("/admin/session/chart", method(http.MethodGet, authenticated(deps.ChartSocketHandler.Serve)))

	return mux
}

func method(expected string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
