package cart

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
	r.HandleFunc("/{userId}", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("", h.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/{id}", h.UpdateQuantity).Methods(http.MethodPut)
	r.HandleFunc("/{id}", h.RemoveItem).Methods(http.MethodDelete)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	items, err := h.svc.GetCart(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch cart", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID    int64 `json:"user_id"`
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
		VolumeML  int   `json:"volume_ml"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.AddItem(r.Context(), AddItemParams{
		UserID:    body.UserID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
		VolumeML:  body.VolumeML,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrInvalidQuantity):
			utils.WriteError(w, http.StatusBadRequest, "Quantity must be greater than zero")
		default:
			logger.FromCtx(r.Context()).Error("failed to add cart item", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Item added to cart",
		"cart_item_id": id,
	})
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := utils.ToInt64(mux.Vars(r)["id"])
	if err != nil || itemID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Cart item ID is required")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.UpdateQuantity(r.Context(), itemID, body.Quantity); err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			utils.WriteError(w, http.StatusBadRequest, "Quantity must be greater than zero")
		case errors.Is(err, ErrItemNotFound):
			utils.WriteError(w, http.StatusNotFound, "Cart item not found")
		default:
			logger.FromCtx(r.Context()).Error("failed to update cart item", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Cart item updated",
	})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := utils.ToInt64(mux.Vars(r)["id"])
	if err != nil || itemID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Cart item ID is required")
		return
	}

	if err := h.svc.RemoveItem(r.Context(), itemID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to remove cart item", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Item removed from cart",
	})
}
