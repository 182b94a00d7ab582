package address

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
	r.HandleFunc("", h.AddAddress).Methods(http.MethodPost)
	r.HandleFunc("/{userId}", h.GetAddresses).Methods(http.MethodGet)
}

func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID        int64  `json:"userId"`
		FullName      string `json:"fullName"`
		PhoneNumber   string `json:"phoneNumber"`
		Region        string `json:"region"`
		Province      string `json:"province"`
		City          string `json:"city"`
		Barangay      string `json:"barangay"`
		StreetAddress string `json:"streetAddress"`
		PostalCode    string `json:"postalCode"`
		IsDefault     bool   `json:"isDefault"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.AddAddress(r.Context(), &Address{
		UserID:        body.UserID,
		FullName:      body.FullName,
		PhoneNumber:   body.PhoneNumber,
		Region:        body.Region,
		Province:      body.Province,
		City:          body.City,
		Barangay:      body.Barangay,
		StreetAddress: body.StreetAddress,
		PostalCode:    body.PostalCode,
		IsDefault:     body.IsDefault,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			utils.WriteError(w, http.StatusBadRequest, "All address fields are required")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to add address", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save address")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Address saved",
		"address": saved,
	})
}

func (h *Handler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(mux.Vars(r)["userId"])
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	addresses, err := h.svc.GetAddresses(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch addresses", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, addresses)
}
