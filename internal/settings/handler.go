package settings

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
	r.HandleFunc("/points-per-peso", h.GetPointsPerPeso).Methods(http.MethodGet)
	r.HandleFunc("/points-per-peso", h.UpdatePointsPerPeso).Methods(http.MethodPut)
}

func (h *Handler) GetPointsPerPeso(w http.ResponseWriter, r *http.Request) {
	rate := h.svc.GetConversionRate(r.Context())
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"pointsPerPeso": rate,
	})
}

func (h *Handler) UpdatePointsPerPeso(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PointsPerPeso float64 `json:"pointsPerPeso"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.UpdateConversionRate(r.Context(), body.PointsPerPeso); err != nil {
		if errors.Is(err, ErrInvalidRate) {
			utils.WriteError(w, http.StatusBadRequest, "Conversion rate must be greater than zero")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to update conversion rate", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Conversion rate updated",
		"pointsPerPeso": body.PointsPerPeso,
	})
}
