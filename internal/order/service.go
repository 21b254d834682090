package order

import (
	"context"
	"errors"

	"crm-be/internal/apperror"
	"crm-be/internal/client"
	"crm-be/internal/logger"
	"crm-be/internal/metrics"
	"crm-be/internal/ownership"
	"crm-be/internal/product"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("crm-be/internal/order")

// ClientDirectory resolves the client an order is placed for.
type ClientDirectory interface {
	FindByID(ctx context.Context, id string) (*client.Client, error)
}

// Catalog reads products and writes back their stock.
type Catalog interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
	Save(ctx context.Context, p *product.Product) error
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReportInvalidator is told when committed orders change.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Service interface {
	Create(ctx context.Context, sellerID string, input CreateInput) (*Order, error)
	Revise(ctx context.Context, sellerID, orderID string, input ReviseInput) (*Order, error)
	Delete(ctx context.Context, sellerID, orderID string) error
	Get(ctx context.Context, sellerID, orderID string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Order, error)
	ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]*Order, error)
}

type service struct {
	repo     Repository
	clients  ClientDirectory
	products Catalog
	tx       Transactor
	reports  ReportInvalidator
	metrics  *metrics.OrderMetrics
}

func NewService(
	repo Repository,
	clients ClientDirectory,
	products Catalog,
	tx Transactor,
	reports ReportInvalidator,
	m *metrics.OrderMetrics,
) Service {
	if m == nil {
		m = metrics.NewOrderMetrics()
	}
	return &service{
		repo:     repo,
		clients:  clients,
		products: products,
		tx:       tx,
		reports:  reports,
		metrics:  m,
	}
}

// Create places an order for one of the seller's clients. Stock for every line
// item is taken in list order and the order row is written last, all in one
// transaction: any failure leaves stock untouched.
func (s *service) Create(ctx context.Context, sellerID string, input CreateInput) (*Order, error) {
	ctx, span := tracer.Start(ctx, "order.Create", trace.WithAttributes(
		attribute.String("client.id", input.ClientID),
		attribute.Int("order.items", len(input.Items)),
	))
	defer span.End()

	timer := metrics.StartTimer()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("client_id", input.ClientID),
	)

	if err := validateItems(input.Items); err != nil {
		return nil, err
	}
	if input.Total < 0 {
		return nil, ErrNegativeTotal
	}
	status, err := resolveStatus(input.Status, StatusPending)
	if err != nil {
		return nil, err
	}

	var created *Order
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.clients.FindByID(ctx, input.ClientID)
		if err != nil {
			return err
		}
		if err := ownership.Authorize(c, sellerID); err != nil {
			return err
		}

		if err := s.takeStock(ctx, input.Items); err != nil {
			return err
		}

		created, err = s.repo.Create(ctx, &Order{
			Items:    input.Items,
			Total:    input.Total,
			ClientID: c.ID,
			SellerID: c.SellerID,
			Status:   status,
		})
		return err
	})
	if err != nil {
		s.fail(span, log, "create order failed", err)
		return nil, err
	}

	s.metrics.Committed.Inc()
	s.metrics.ObserveCommit(timer.Duration())
	s.invalidateReports(ctx)

	span.SetAttributes(attribute.String("order.id", created.ID))
	log.Info("order created",
		zap.String("order_id", created.ID),
		zap.Duration("duration", timer.Duration()),
	)
	return created, nil
}

// Revise overwrites the supplied fields of an order. New line items go through
// the same stock pass as Create; stock taken by the previous items is kept.
func (s *service) Revise(ctx context.Context, sellerID, orderID string, input ReviseInput) (*Order, error) {
	ctx, span := tracer.Start(ctx, "order.Revise", trace.WithAttributes(
		attribute.String("order.id", orderID),
	))
	defer span.End()

	timer := metrics.StartTimer()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Revise"),
		zap.String("order_id", orderID),
	)

	if input.Items != nil {
		if err := validateItems(input.Items); err != nil {
			return nil, err
		}
	}
	if input.Total != nil && *input.Total < 0 {
		return nil, ErrNegativeTotal
	}

	var updated *Order
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := ownership.Authorize(o, sellerID); err != nil {
			return err
		}

		clientID := o.ClientID
		if input.ClientID != nil && *input.ClientID != "" {
			clientID = *input.ClientID
		}
		c, err := s.clients.FindByID(ctx, clientID)
		if err != nil {
			return err
		}
		if err := ownership.Authorize(c, sellerID); err != nil {
			return err
		}

		if input.Items != nil {
			if err := s.takeStock(ctx, input.Items); err != nil {
				return err
			}
			o.Items = input.Items
		}
		if input.Total != nil {
			o.Total = *input.Total
		}
		if o.Status, err = resolveStatus(input.Status, o.Status); err != nil {
			return err
		}
		o.ClientID = c.ID
		o.SellerID = c.SellerID

		updated, err = s.repo.Update(ctx, o)
		return err
	})
	if err != nil {
		s.fail(span, log, "revise order failed", err)
		return nil, err
	}

	s.metrics.Revised.Inc()
	s.metrics.ObserveCommit(timer.Duration())
	s.invalidateReports(ctx)

	log.Info("order revised", zap.Duration("duration", timer.Duration()))
	return updated, nil
}

// Delete removes an order. Stock taken by its line items is not given back.
func (s *service) Delete(ctx context.Context, sellerID, orderID string) error {
	ctx, span := tracer.Start(ctx, "order.Delete", trace.WithAttributes(
		attribute.String("order.id", orderID),
	))
	defer span.End()

	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	if _, err := s.Get(ctx, sellerID, orderID); err != nil {
		s.fail(span, log, "delete order rejected", err)
		return err
	}
	if err := s.repo.Delete(ctx, orderID); err != nil {
		s.fail(span, log, "delete order failed", err)
		return err
	}

	s.metrics.Deleted.Inc()
	s.invalidateReports(ctx)
	log.Info("order deleted")
	return nil
}

func (s *service) Get(ctx context.Context, sellerID, orderID string) (*Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := ownership.Authorize(o, sellerID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]*Order, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *service) ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListBySellerAndStatus(ctx, sellerID, status)
}

// takeStock deducts each line item from its product and saves the product
// before moving to the next item. A product listed twice is read twice, so the
// second read sees what the first left.
func (s *service) takeStock(ctx context.Context, items []LineItem) error {
	log := logger.FromCtx(ctx)

	for i, item := range items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if err := p.Deduct(item.Quantity); err != nil {
			log.Warn("insufficient stock",
				zap.Int("index", i),
				zap.String("product_id", p.ID),
				zap.Int("requested", item.Quantity),
				zap.Int("available", p.Stock),
			)
			return err
		}
		if err := s.products.Save(ctx, p); err != nil {
			return err
		}
		s.metrics.UnitsDeducted.Add(uint64(item.Quantity))
	}
	return nil
}

func (s *service) invalidateReports(ctx context.Context) {
	if s.reports == nil {
		return
	}
	if err := s.reports.Invalidate(ctx); err != nil {
		logger.FromCtx(ctx).Warn("report cache invalidation failed", zap.Error(err))
	}
}

func (s *service) fail(span trace.Span, log *zap.Logger, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, apperror.Code(err))

	switch {
	case errors.Is(err, apperror.ErrForbidden):
		s.metrics.Forbidden.Inc()
	case errors.Is(err, apperror.ErrInsufficientStock):
		s.metrics.InsufficientStock.Inc()
	case errors.Is(err, apperror.ErrConflict):
		s.metrics.Conflicts.Inc()
	default:
		s.metrics.Failed.Inc()
	}

	if apperror.IsKnown(err) {
		log.Warn(msg, zap.String("code", apperror.Code(err)), zap.Error(err))
		return
	}
	log.Error(msg, zap.Error(err))
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return apperror.Newf(apperror.ErrInvalidInput,
				"line item %d (product %s): quantity must be positive, got %d", i+1, item.ProductID, item.Quantity)
		}
		if item.ProductID == "" {
			return product.ErrProductNotFound
		}
	}
	return nil
}

func resolveStatus(s *Status, fallback Status) (Status, error) {
	if s == nil {
		return fallback, nil
	}
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return *s, nil
}
