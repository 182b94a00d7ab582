package product

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
	r.HandleFunc("", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/{id}", h.GetProduct).Methods(http.MethodGet)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.svc.ListProducts(r.Context(), page, limit)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list products", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"products":      result.Products,
		"currentPage":   result.CurrentPage,
		"totalPages":    result.TotalPages,
		"totalProducts": result.TotalProducts,
		"limit":         result.Limit,
		"hasNextPage":   result.HasNextPage,
		"hasPrevPage":   result.HasPrevPage,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt64(mux.Vars(r)["id"])
	if err != nil || id == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to fetch product", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"product": p,
	})
}
