package favorites

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
	r.HandleFunc("/{userId}", h.List).Methods(http.MethodGet)
	r.HandleFunc("", h.Add).Methods(http.MethodPost)
	r.HandleFunc("", h.Remove).Methods(http.MethodDelete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	favs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch favorites", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, favs)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID    int64 `json:"user_id"`
		ProductID int64 `json:"product_id"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.Add(r.Context(), body.UserID, body.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrAlreadyFavorited):
			utils.WriteError(w, http.StatusConflict, "Product already in favorites")
		default:
			logger.FromCtx(r.Context()).Error("failed to add favorite", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Added to favorites",
		"favorite_id": id,
	})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID    int64 `json:"user_id"`
		ProductID int64 `json:"product_id"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Remove(r.Context(), body.UserID, body.ProductID); err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrNotFound):
			utils.WriteError(w, http.StatusNotFound, "Favorite not found")
		default:
			logger.FromCtx(r.Context()).Error("failed to remove favorite", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Removed from favorites",
	})
}
