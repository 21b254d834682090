package graph

import (
	"context"

	"crm-be/internal/client"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/report"
	"crm-be/internal/user"

	"github.com/stretchr/testify/mock"
)

func ret[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

// --- user ---

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, input user.RegisterInput) (*user.User, error) {
	return ret[*user.User](m.Called(ctx, input))
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	var u *user.User
	if args.Get(1) != nil {
		u = args.Get(1).(*user.User)
	}
	return args.String(0), u, args.Error(2)
}

func (m *MockUserService) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	return ret[*user.User](m.Called(ctx, token))
}

// --- product ---

type MockProductService struct{ mock.Mock }

func (m *MockProductService) Create(ctx context.Context, input product.ProductInput) (*product.Product, error) {
	return ret[*product.Product](m.Called(ctx, input))
}

func (m *MockProductService) Update(ctx context.Context, id string, input product.ProductInput) (*product.Product, error) {
	return ret[*product.Product](m.Called(ctx, id, input))
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	return ret[*product.Product](m.Called(ctx, id))
}

func (m *MockProductService) List(ctx context.Context) ([]*product.Product, error) {
	return ret[[]*product.Product](m.Called(ctx))
}

func (m *MockProductService) Search(ctx context.Context, text string) ([]*product.Product, error) {
	return ret[[]*product.Product](m.Called(ctx, text))
}

// --- client ---

type MockClientService struct{ mock.Mock }

func (m *MockClientService) Create(ctx context.Context, sellerID string, input client.ClientInput) (*client.Client, error) {
	return ret[*client.Client](m.Called(ctx, sellerID, input))
}

func (m *MockClientService) Get(ctx context.Context, sellerID, id string) (*client.Client, error) {
	return ret[*client.Client](m.Called(ctx, sellerID, id))
}

func (m *MockClientService) Update(ctx context.Context, sellerID, id string, input client.ClientInput) (*client.Client, error) {
	return ret[*client.Client](m.Called(ctx, sellerID, id, input))
}

func (m *MockClientService) Delete(ctx context.Context, sellerID, id string) error {
	return m.Called(ctx, sellerID, id).Error(0)
}

func (m *MockClientService) List(ctx context.Context) ([]*client.Client, error) {
	return ret[[]*client.Client](m.Called(ctx))
}

func (m *MockClientService) ListBySeller(ctx context.Context, sellerID string) ([]*client.Client, error) {
	return ret[[]*client.Client](m.Called(ctx, sellerID))
}

// --- order ---

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) Create(ctx context.Context, sellerID string, input order.CreateInput) (*order.Order, error) {
	return ret[*order.Order](m.Called(ctx, sellerID, input))
}

func (m *MockOrderService) Revise(ctx context.Context, sellerID, orderID string, input order.ReviseInput) (*order.Order, error) {
	return ret[*order.Order](m.Called(ctx, sellerID, orderID, input))
}

func (m *MockOrderService) Delete(ctx context.Context, sellerID, orderID string) error {
	return m.Called(ctx, sellerID, orderID).Error(0)
}

func (m *MockOrderService) Get(ctx context.Context, sellerID, orderID string) (*order.Order, error) {
	return ret[*order.Order](m.Called(ctx, sellerID, orderID))
}

func (m *MockOrderService) List(ctx context.Context) ([]*order.Order, error) {
	return ret[[]*order.Order](m.Called(ctx))
}

func (m *MockOrderService) ListBySeller(ctx context.Context, sellerID string) ([]*order.Order, error) {
	return ret[[]*order.Order](m.Called(ctx, sellerID))
}

func (m *MockOrderService) ListBySellerAndStatus(ctx context.Context, sellerID string, status order.Status) ([]*order.Order, error) {
	return ret[[]*order.Order](m.Called(ctx, sellerID, status))
}

// --- report ---

type MockReportService struct{ mock.Mock }

func (m *MockReportService) TopClients(ctx context.Context) ([]*report.TopClient, error) {
	return ret[[]*report.TopClient](m.Called(ctx))
}

func (m *MockReportService) TopSellers(ctx context.Context) ([]*report.TopSeller, error) {
	return ret[[]*report.TopSeller](m.Called(ctx))
}

func (m *MockReportService) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
