package cart

import (
	"context"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

type AddItemParams struct {
	UserID    int64
	ProductID int64
	Quantity  int
	VolumeML  int
}

type Service interface {
	GetCart(ctx context.Context, userID int64) ([]*Item, error)
	AddItem(ctx context.Context, params AddItemParams) (int64, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCart(ctx context.Context, userID int64) ([]*Item, error) {
	if userID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.ListByUser(ctx, userID)
}

// AddItem always inserts a new row. The same product can appear in the
// cart more than once, once per volume variant the customer picked.
func (s *service) AddItem(ctx context.Context, params AddItemParams) (int64, error) {
	if params.UserID == 0 || params.ProductID == 0 || params.VolumeML == 0 {
		return 0, ErrMissingFields
	}
	if params.Quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	id, err := s.repo.Insert(ctx, &Item{
		UserID:    params.UserID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
		VolumeML:  params.VolumeML,
	})
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("cart item added",
		zap.Int64("cart_item_id", id),
		zap.Int64("user_id", params.UserID),
		zap.Int64("product_id", params.ProductID),
	)

	return id, nil
}

func (s *service) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if itemID == 0 {
		return ErrMissingFields
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(ctx, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, itemID int64) error {
	if itemID == 0 {
		return ErrMissingFields
	}
	return s.repo.Delete(ctx, itemID)
}
