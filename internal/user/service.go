package user

import (
	"context"
	"strings"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

type RegisterParams struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
}

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetProfile(ctx context.Context, userID int64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if params.Email == "" || params.Password == "" || params.FullName == "" {
		return "", nil, ErrMissingFields
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Email:       params.Email,
		Password:    hashed,
		FullName:    params.FullName,
		PhoneNumber: params.PhoneNumber,
		Role:        RoleCustomer,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", params.Email), zap.Error(err))
		if strings.Contains(err.Error(), "user_account_email_key") {
			return "", nil, ErrEmailExists
		}
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int64("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("email", params.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login failed: email not found", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login failed: password mismatch", zap.Int64("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*User, error) {
	if userID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.FindByID(ctx, userID)
}
