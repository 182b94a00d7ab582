package feedback

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
	r.HandleFunc("", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/product/{productId}", h.ProductSummary).Methods(http.MethodGet)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID        int64  `json:"orderId"`
		ProductID      int64  `json:"productId"`
		UserID         int64  `json:"userId"`
		ProductRating  int    `json:"productRating"`
		DeliveryRating int    `json:"deliveryRating"`
		FeedbackText   string `json:"feedbackText"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Submit(r.Context(), SubmitParams{
		OrderID:        body.OrderID,
		ProductID:      body.ProductID,
		UserID:         body.UserID,
		ProductRating:  body.ProductRating,
		DeliveryRating: body.DeliveryRating,
		FeedbackText:   body.FeedbackText,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrMissingRating):
			utils.WriteError(w, http.StatusBadRequest, "Product and delivery ratings are required")
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteError(w, http.StatusNotFound, "Order not found")
		default:
			logger.FromCtx(r.Context()).Error("failed to submit feedback", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Failed to submit feedback")
		}
		return
	}

	message := "Feedback submitted successfully"
	if result.AlreadyAwarded {
		message = "Feedback updated. Points were already awarded for this order."
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"message":        message,
		"feedback_id":    result.FeedbackID,
		"pointsEarned":   result.PointsEarned,
		"alreadyAwarded": result.AlreadyAwarded,
	})
}

func (h *Handler) ProductSummary(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToInt64(mux.Vars(r)["productId"])
	if err != nil || productID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	summary, err := h.svc.ProductSummary(r.Context(), productID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch product feedback", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"summary": summary,
	})
}
