package address

import "context"

type Service interface {
	AddAddress(ctx context.Context, a *Address) (*Address, error)
	GetAddresses(ctx context.Context, userID int64) ([]*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddAddress(ctx context.Context, a *Address) (*Address, error) {
	if a.UserID == 0 || a.FullName == "" || a.PhoneNumber == "" ||
		a.Region == "" || a.Province == "" || a.City == "" ||
		a.Barangay == "" || a.StreetAddress == "" || a.PostalCode == "" {
		return nil, ErrMissingFields
	}
	return s.repo.Insert(ctx, a)
}

func (s *service) GetAddresses(ctx context.Context, userID int64) ([]*Address, error) {
	if userID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.ListByUser(ctx, userID)
}
