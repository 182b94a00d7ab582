package favorites

import "context"

type Service interface {
	List(ctx context.Context, userID int64) ([]*Favorite, error)
	Add(ctx context.Context, userID, productID int64) (int64, error)
	Remove(ctx context.Context, userID, productID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID int64) ([]*Favorite, error) {
	if userID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Add(ctx context.Context, userID, productID int64) (int64, error) {
	if userID == 0 || productID == 0 {
		return 0, ErrMissingFields
	}
	return s.repo.Insert(ctx, userID, productID)
}

func (s *service) Remove(ctx context.Context, userID, productID int64) error {
	if userID == 0 || productID == 0 {
		return ErrMissingFields
	}
	return s.repo.Delete(ctx, userID, productID)
}
