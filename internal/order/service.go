package order

import (
	"context"
	"errors"
	"math"

	"acclivity-be/internal/earnings"
	"acclivity-be/internal/logger"
	"acclivity-be/internal/metrics"
	"acclivity-be/internal/verification"

	"go.uber.org/zap"
)

type PlaceOrderParams struct {
	UserID            int64
	TotalAmount       float64
	DeliveryAddressID int64
	OrderStatus       string
	PaymentMethod     string
	PaymentStatus     string
	GcashRef          *string
	OrderDate         string
	DeliveryDate      *string
	Notes             string
}

type PlaceOrderResult struct {
	OrderID        int64
	TotalAmount    float64
	PointsEarned   float64
	ConversionRate float64
}

type AddItemParams struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     float64
}

type Service interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*PlaceOrderResult, error)
	AddOrderItem(ctx context.Context, params AddItemParams) (int64, error)
	GetOrders(ctx context.Context, userID int64) ([]*Order, error)
}

type service struct {
	repo          Repository
	verifications verification.Repository
	earnings      earnings.Service
}

func NewService(repo Repository, verifications verification.Repository, earningsSvc earnings.Service) Service {
	return &service{
		repo:          repo,
		verifications: verifications,
		earnings:      earningsSvc,
	}
}

// PurchasePoints converts an order total into purchase points.
func PurchasePoints(totalAmount float64) float64 {
	return math.Floor(totalAmount / PesosPerPoint)
}

// PlaceOrder validates input, gates on the user's verification status,
// persists the order, and accrues purchase points. The points write is
// best-effort: a ledger failure is logged but never rolls back or fails
// the already-durable order.
func (s *service) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*PlaceOrderResult, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("user_id", params.UserID))

	if params.UserID == 0 || params.TotalAmount <= 0 || params.DeliveryAddressID == 0 ||
		params.OrderStatus == "" || params.PaymentMethod == "" ||
		params.PaymentStatus == "" || params.OrderDate == "" {
		return nil, ErrMissingFields
	}

	status, err := s.verifications.LatestStatus(ctx, params.UserID)
	if err != nil {
		log.Error("failed to check verification status", zap.Error(err))
		return nil, err
	}
	if status != verification.StatusVerified {
		log.Warn("order blocked: user not verified", zap.String("verification_status", status))
		return nil, &VerificationRequiredError{Status: status}
	}

	orderID, err := s.repo.InsertOrder(ctx, &Order{
		UserID:            params.UserID,
		TotalAmount:       params.TotalAmount,
		DeliveryAddressID: params.DeliveryAddressID,
		OrderStatus:       OrderStatus(params.OrderStatus),
		PaymentMethod:     params.PaymentMethod,
		PaymentStatus:     params.PaymentStatus,
		GcashRef:          params.GcashRef,
		OrderDate:         params.OrderDate,
		DeliveryDate:      params.DeliveryDate,
		Notes:             params.Notes,
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()

	points := PurchasePoints(params.TotalAmount)
	result := &PlaceOrderResult{
		OrderID:      orderID,
		TotalAmount:  params.TotalAmount,
		PointsEarned: points,
	}

	rec, err := s.earnings.RecordEarning(ctx, earnings.RecordEarningParams{
		UserID:       params.UserID,
		Type:         earnings.TypePurchase,
		PointsEarned: points,
		Description:  "Points earned from purchase",
		ReferenceID:  &orderID,
	})
	if err != nil {
		log.Warn("failed to record purchase points, order kept",
			zap.Int64("order_id", orderID),
			zap.Float64("points", points),
			zap.Error(err),
		)
		return result, nil
	}
	result.ConversionRate = rec.ConversionRate

	log.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.Float64("total_amount", params.TotalAmount),
		zap.Float64("points_earned", points),
	)

	return result, nil
}

func (s *service) AddOrderItem(ctx context.Context, params AddItemParams) (int64, error) {
	if params.OrderID == 0 || params.ProductID == 0 || params.Price <= 0 {
		return 0, ErrMissingFields
	}
	if params.Quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	itemID, err := s.repo.AddItemTx(ctx, &OrderItem{
		OrderID:   params.OrderID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
		Price:     params.Price,
	})
	if err != nil {
		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			metrics.StockConflicts.Inc()
		}
		return 0, err
	}

	metrics.OrderItemsAdded.Inc()
	return itemID, nil
}

func (s *service) GetOrders(ctx context.Context, userID int64) ([]*Order, error) {
	if userID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.OrdersByUser(ctx, userID)
}
