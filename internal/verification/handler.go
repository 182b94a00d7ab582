package verification

import (
	"errors"
	"net/http"

	"acclivity-be/internal/logger"
	"acclivity-be/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/verification/submit", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/verification/status", h.Status).Methods(http.MethodGet)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID           int64   `json:"user_id"`
		NationalIDNumber *string `json:"nationalIdNumber"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.UserID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	v, err := h.svc.Submit(r.Context(), SubmitParams{
		UserID:           body.UserID,
		NationalIDNumber: body.NationalIDNumber,
	})
	if err != nil {
		if errors.Is(err, ErrMissingUserID) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.FromCtx(r.Context()).Error("verification submit failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Verification processed",
		"status":  v.Status,
	})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(r.URL.Query().Get("user_id"))
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	v, err := h.svc.Status(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("verification status failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"status":      v.Status,
		"match_score": v.MatchScore,
		"verified_at": v.VerifiedAt,
	})
}
