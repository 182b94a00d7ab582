package notification

import (
	"errors"
	"net/http"
	"strconv"

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
	r.HandleFunc("", h.List).Methods(http.MethodGet)
	r.HandleFunc("", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/{id}/read", h.MarkRead).Methods(http.MethodPost)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	userID, _ := utils.ToInt64(r.URL.Query().Get("userId"))

	notifications, err := h.svc.ListActive(r.Context(), userID, limit)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch notifications", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"notifications": notifications,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title          string `json:"title"`
		Message        string `json:"message"`
		Type           string `json:"type"`
		TargetAudience string `json:"target_audience"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), CreateParams{
		Title:          body.Title,
		Message:        body.Message,
		Type:           body.Type,
		TargetAudience: body.TargetAudience,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			utils.WriteError(w, http.StatusBadRequest, "Title and message are required")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to create notification", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"message":         "Notification created",
		"notification_id": id,
	})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := utils.ToInt64(mux.Vars(r)["id"])
	if err != nil || notificationID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Notification ID is required")
		return
	}

	var body struct {
		UserID int64 `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.MarkRead(r.Context(), notificationID, body.UserID); err != nil {
		if errors.Is(err, ErrMissingFields) {
			utils.WriteError(w, http.StatusBadRequest, "User ID is required")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to mark notification read", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Notification marked as read",
	})
}
