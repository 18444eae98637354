package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/service"
)

// AuthHandlers serves login, logout and password rotation.
type AuthHandlers struct {
	reports *service.ReportService
	logger  *zap.Logger
}

// NewAuthHandlers returns handler struct.
func NewAuthHandlers(reports *service.ReportService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{reports: reports, logger: logger}
}

type loginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.LoginID == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "login_id and password are required")
		return
	}

	token, err := h.reports.Login(r.Context(), req.LoginID, req.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("login_id", req.LoginID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// Logout handles POST /admin/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session")
		return
	}
	if err := h.reports.Logout(r.Context(), sessionID); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"cur_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PATCH /admin/password.
func (h *AuthHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.UpstreamTokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "new_password is required")
		return
	}

	if err := h.reports.ChangePassword(r.Context(), token, req.CurrentPassword, req.NewPassword); err != nil {
		h.logger.Warn("password change failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}
