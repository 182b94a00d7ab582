package product

import (
	"context"
	"math"
)

type Service interface {
	ListProducts(ctx context.Context, page, limit int) (*Page, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListProducts clamps the pagination inputs and assembles the page
// envelope. Out-of-range pages return an empty product list rather than
// an error.
func (s *service) ListProducts(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &Page{
		Products:      products,
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		Limit:         limit,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}
