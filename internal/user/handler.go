package user

import (
	"errors"
	"net/http"

	"acclivity-be/internal/logger"
	"acclivity-be/internal/middleware"
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
	r.HandleFunc("/register", h.RegisterUser).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/profile", h.Profile).Methods(http.MethodGet)
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		FullName    string `json:"fullName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, u, err := h.svc.Register(r.Context(), RegisterParams{
		Email:       body.Email,
		Password:    body.Password,
		FullName:    body.FullName,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Email, password, and full name are required")
		case errors.Is(err, ErrEmailExists):
			utils.WriteError(w, http.StatusConflict, "Email already registered")
		default:
			logger.FromCtx(r.Context()).Error("failed to register user", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    u,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, u, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.FromCtx(r.Context()).Error("login failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    u,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	u, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to fetch profile", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	})
}
