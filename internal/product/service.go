package product

import (
	"context"
	"strings"
	"time"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input ProductInput) (*Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Search(ctx context.Context, text string) ([]*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(input ProductInput) (ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, ErrEmptyName
	}
	if input.Stock < 0 {
		return input, ErrNegativeStock
	}
	if input.Price < 0 {
		return input, ErrNegativePrice
	}
	return input, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*Product, error) {
	input, err := validate(input)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, &Product{Name: input.Name, Stock: input.Stock, Price: input.Price})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", p.ID),
		zap.Int("stock", p.Stock),
	)
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	input, err := validate(input)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		logger.FromCtx(ctx).Warn("update product failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Warn("delete product failed", zap.String("product_id", id), zap.Error(err))
		return err
	}
	logger.FromCtx(ctx).Info("product deleted", zap.String("product_id", id))
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, text string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Search"),
	)

	text = strings.TrimSpace(text)
	if text == "" {
		return []*Product{}, nil
	}

	start := time.Now()
	products, err := s.repo.Search(ctx, text, searchLimit)
	if err != nil {
		log.Error("product search failed", zap.Error(err))
		return nil, err
	}

	log.Debug("product search done",
		zap.String("text", text),
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}
