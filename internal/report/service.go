package report

import (
	"context"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	TopClients(ctx context.Context) ([]*TopClient, error)
	TopSellers(ctx context.Context) ([]*TopSeller, error)
	// Invalidate drops cached reports after orders change.
	Invalidate(ctx context.Context) error
}

type service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) Service {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) TopClients(ctx context.Context) ([]*TopClient, error) {
	var cached []*TopClient
	if s.fromCache(ctx, keyTopClients, &cached) {
		return cached, nil
	}

	res, err := s.repo.TopClients(ctx, topClientsLimit)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, keyTopClients, res)
	return res, nil
}

func (s *service) TopSellers(ctx context.Context) ([]*TopSeller, error) {
	var cached []*TopSeller
	if s.fromCache(ctx, keyTopSellers, &cached) {
		return cached, nil
	}

	res, err := s.repo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, keyTopSellers, res)
	return res, nil
}

func (s *service) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

// Cache failures degrade to a database read, never to an error.
func (s *service) fromCache(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logger.FromCtx(ctx).Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		logger.FromCtx(ctx).Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
