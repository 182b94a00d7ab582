package order

import (
	"errors"
	"fmt"
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
	r.HandleFunc("", h.PlaceOrder).Methods(http.MethodPost)
	r.HandleFunc("", h.GetOrders).Methods(http.MethodGet)
	r.HandleFunc("/items", h.AddOrderItem).Methods(http.MethodPost)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID            int64   `json:"userId"`
		TotalAmount       float64 `json:"totalAmount"`
		DeliveryAddressID int64   `json:"deliveryAddressId"`
		OrderStatus       string  `json:"orderStatus"`
		PaymentMethod     string  `json:"paymentMethod"`
		PaymentStatus     string  `json:"paymentStatus"`
		GcashRef          *string `json:"gcashRef"`
		OrderDate         string  `json:"orderDate"`
		DeliveryDate      *string `json:"deliveryDate"`
		Notes             string  `json:"notes"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.PlaceOrder(r.Context(), PlaceOrderParams{
		UserID:            body.UserID,
		TotalAmount:       body.TotalAmount,
		DeliveryAddressID: body.DeliveryAddressID,
		OrderStatus:       body.OrderStatus,
		PaymentMethod:     body.PaymentMethod,
		PaymentStatus:     body.PaymentStatus,
		GcashRef:          body.GcashRef,
		OrderDate:         body.OrderDate,
		DeliveryDate:      body.DeliveryDate,
		Notes:             body.Notes,
	})
	if err != nil {
		var verr *VerificationRequiredError
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.As(err, &verr):
			utils.WriteJSON(w, http.StatusForbidden, map[string]any{
				"success":            false,
				"message":            "Account verification required. Please verify your account before placing an order.",
				"verificationStatus": verr.Status,
			})
		default:
			logger.FromCtx(r.Context()).Error("failed to place order", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"message":            "Order placed successfully",
		"order_id":           result.OrderID,
		"total_amount":       result.TotalAmount,
		"points_earned":      result.PointsEarned,
		"conversion_rate":    result.ConversionRate,
		"points_calculation": "1 point per 20 pesos",
	})
}

func (h *Handler) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID   int64   `json:"order_id"`
		ProductID int64   `json:"product_id"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	itemID, err := h.svc.AddOrderItem(r.Context(), AddItemParams{
		OrderID:   body.OrderID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
		Price:     body.Price,
	})
	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.Is(err, ErrMissingFields):
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrInvalidQuantity):
			utils.WriteError(w, http.StatusBadRequest, "Quantity must be greater than zero")
		case errors.Is(err, ErrProductNotFound):
			utils.WriteError(w, http.StatusNotFound, "Product not found")
		case errors.As(err, &stockErr):
			utils.WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", stockErr.Available, stockErr.Requested))
		default:
			logger.FromCtx(r.Context()).Error("failed to add order item", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Order item added and stock updated",
		"order_item_id": itemID,
	})
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ToInt64(r.URL.Query().Get("userId"))
	if err != nil || userID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	orders, err := h.svc.GetOrders(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to fetch orders", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if orders == nil {
		orders = []*Order{}
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}
