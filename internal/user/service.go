package user

import (
	"context"
	"errors"
	"strings"

	"crm-be/internal/apperror"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Authenticate(ctx context.Context, email, password string) (string, *User, error)
	CurrentUser(ctx context.Context, token string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, apperror.New(apperror.ErrInvalidInput, "email and password are required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Error("failed to look up email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		log.Warn("email already registered", zap.String("email", email))
		return nil, ErrEmailExists
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  hashed,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("register service completed",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)

	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Authenticate"),
	)

	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Warn("email not found", zap.String("email", email), zap.Error(err))
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("password does not match", zap.String("user_id", u.ID))
		return "", nil, ErrIncorrectPassword
	}

	token, err := GenerateJWT(*u)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

// CurrentUser resolves the seller described by a token without touching the store.
func (s *service) CurrentUser(ctx context.Context, token string) (*User, error) {
	claims, err := ParseJWT(strings.TrimPrefix(token, "Bearer "))
	if err != nil {
		logger.FromCtx(ctx).Debug("token rejected", zap.Error(err))
		if errors.Is(err, ErrMissingSecret) {
			return nil, err
		}
		return nil, ErrInvalidToken
	}

	return &User{
		ID:        claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Email:     claims.Email,
	}, nil
}
