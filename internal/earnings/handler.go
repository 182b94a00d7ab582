package earnings

import (
	"errors"
	"net/http"
	"time"

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
	r.HandleFunc("/daily-claim-status/{userId}", h.GetDailyClaimStatus).Methods(http.MethodGet)
	r.HandleFunc("/daily-claim", h.RecordDailyClaim).Methods(http.MethodPost)
	r.HandleFunc("/points-balance/{userId}", h.GetPointsBalance).Methods(http.MethodGet)
	r.HandleFunc("", h.AddEarning).Methods(http.MethodPost)
	r.HandleFunc("/{userId}", h.GetHistory).Methods(http.MethodGet)
}

func (h *Handler) GetDailyClaimStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	status, err := h.svc.GetClaimStatus(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to get claim status", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	var lastClaim any
	if status.LastClaimAt != nil {
		lastClaim = status.LastClaimAt.UTC().Format(time.RFC3339)
	}

	var hoursSince any
	if status.HoursSince != nil {
		hoursSince = *status.HoursSince
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"canClaim":            status.CanClaim,
		"lastClaimDate":       lastClaim,
		"weeklyStreak":        status.Streak,
		"hoursSinceLastClaim": hoursSince,
	})
}

func (h *Handler) RecordDailyClaim(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID       int64   `json:"userId"`
		PointsEarned float64 `json:"pointsEarned"`
		WeeklyStreak *int    `json:"weeklyStreak"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.UserID == 0 || body.PointsEarned == 0 || body.WeeklyStreak == nil {
		utils.WriteError(w, http.StatusBadRequest, "User ID, points earned, and weekly streak are required")
		return
	}

	e, err := h.svc.RecordDailyClaim(r.Context(), body.UserID, body.PointsEarned, *body.WeeklyStreak)
	if err != nil {
		switch {
		case errors.Is(err, ErrClaimNotAvailable):
			utils.WriteError(w, http.StatusConflict, "Daily claim not yet available")
		case errors.Is(err, ErrInvalidPoints):
			utils.WriteError(w, http.StatusBadRequest, "Points earned must be positive")
		default:
			logger.FromCtx(r.Context()).Error("failed to record daily claim", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"earningId":       e.ID,
		"conversion_rate": e.ConversionRate,
	})
}

func (h *Handler) GetPointsBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	balance, err := h.svc.GetBalance(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to get balance", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"balance": balance,
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	history, err := h.svc.GetHistory(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to get earnings history", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if history == nil {
		history = []*Earning{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"earnings": history,
	})
}

func (h *Handler) AddEarning(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID       int64   `json:"userId"`
		EarningType  string  `json:"earningType"`
		PointsEarned float64 `json:"pointsEarned"`
		PointsSpent  float64 `json:"pointsSpent"`
		Description  string  `json:"description"`
		ReferenceID  *int64  `json:"referenceId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.UserID == 0 || body.EarningType == "" {
		utils.WriteError(w, http.StatusBadRequest, "User ID and earning type are required")
		return
	}

	e, err := h.svc.RecordEarning(r.Context(), RecordEarningParams{
		UserID:       body.UserID,
		Type:         EarningType(body.EarningType),
		PointsEarned: body.PointsEarned,
		PointsSpent:  body.PointsSpent,
		Description:  body.Description,
		ReferenceID:  body.ReferenceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEarningType), errors.Is(err, ErrInvalidPoints):
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			logger.FromCtx(r.Context()).Error("failed to add earning", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"earningId":       e.ID,
		"conversion_rate": e.ConversionRate,
	})
}
