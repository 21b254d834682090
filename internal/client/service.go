package client

import (
	"context"
	"errors"
	"strings"

	"crm-be/internal/logger"
	"crm-be/internal/ownership"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("crm-be/internal/client")

type Service interface {
	Create(ctx context.Context, sellerID string, input ClientInput) (*Client, error)
	Get(ctx context.Context, sellerID, id string) (*Client, error)
	Update(ctx context.Context, sellerID, id string, input ClientInput) (*Client, error)
	Delete(ctx context.Context, sellerID, id string) error
	List(ctx context.Context) ([]*Client, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Client, error)
}

// ReportInvalidator drops cached reports that embed client details.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

type service struct {
	repo    Repository
	reports ReportInvalidator
}

// NewService builds the client service. reports may be nil.
func NewService(repo Repository, reports ReportInvalidator) Service {
	return &service{repo: repo, reports: reports}
}

func normalize(input ClientInput) (ClientInput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)

	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		return input, ErrMissingFields
	}
	return input, nil
}

func (s *service) Create(ctx context.Context, sellerID string, input ClientInput) (*Client, error) {
	ctx, span := tracer.Start(ctx, "client.Create")
	defer span.End()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	input, err := normalize(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrClientNotFound) {
		log.Error("failed to look up client email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		log.Warn("client already registered", zap.String("email", input.Email))
		return nil, ErrClientExists
	}

	c, err := s.repo.Create(ctx, &Client{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		SellerID:  sellerID,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("client.id", c.ID))
	log.Info("client created", zap.String("client_id", c.ID))
	return c, nil
}

// owned loads a client and checks it belongs to sellerID.
func (s *service) owned(ctx context.Context, sellerID, id string) (*Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.Authorize(c, sellerID); err != nil {
		logger.FromCtx(ctx).Warn("client access denied",
			zap.String("client_id", id),
			zap.String("owner_id", c.SellerID),
		)
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, sellerID, id string) (*Client, error) {
	return s.owned(ctx, sellerID, id)
}

func (s *service) Update(ctx context.Context, sellerID, id string, input ClientInput) (*Client, error) {
	ctx, span := tracer.Start(ctx, "client.Update")
	defer span.End()

	input, err := normalize(input)
	if err != nil {
		return nil, err
	}

	c, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	c.FirstName = input.FirstName
	c.LastName = input.LastName
	c.Company = input.Company
	c.Email = input.Email
	c.Phone = input.Phone

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if s.reports != nil {
		if err := s.reports.Invalidate(ctx); err != nil {
			logger.FromCtx(ctx).Warn("report cache invalidation failed", zap.Error(err))
		}
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, sellerID, id string) error {
	if _, err := s.owned(ctx, sellerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("client deleted", zap.String("client_id", id))
	return nil
}

func (s *service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]*Client, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}
