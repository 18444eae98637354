package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/platform"
	"eyewave/backend/services/report-service/internal/service"
)

// MembersHandlers serves the member roster pages.
type MembersHandlers struct {
	reports *service.ReportService
	logger  *zap.Logger
}

// NewMembersHandlers returns handler struct.
func NewMembersHandlers(reports *service.ReportService, logger *zap.Logger) *MembersHandlers {
	return &MembersHandlers{reports: reports, logger: logger}
}

// List handles GET /admin/members. Filters arrive as query parameters:
// keyword, sex, age_min, age_max.
func (h *MembersHandlers) List(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	q := r.URL.Query()

	filter := service.MemberFilter{
		Keyword: q.Get("keyword"),
		Sex:     q.Get("sex"),
	}
	if raw := q.Get("age_min"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "age_min must be an integer")
			return
		}
		filter.AgeMin = v
	}
	if raw := q.Get("age_max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "age_max must be an integer")
			return
		}
		filter.AgeMax = v
	}

	members, err := h.reports.Members(r.Context(), token, filter)
	if err != nil {
		h.logger.Error("member list failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// Detail handles GET /admin/member?user_id=N.
func (h *MembersHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.reports.MemberByID(r.Context(), token, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// Register handles POST /admin/member/register.
func (h *MembersHandlers) Register(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())

	var input platform.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.reports.RegisterMember(r.Context(), token, input); err != nil {
		h.logger.Warn("member registration rejected", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Withdraw handles DELETE /admin/member/withdraw?user_id=N.
func (h *MembersHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.UpstreamTokenFromContext(r.Context())
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reports.WithdrawMember(r.Context(), token, userID); err != nil {
		h.logger.Error("member withdrawal failed", zap.Int64("user_id", userID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "withdrawn"})
}
