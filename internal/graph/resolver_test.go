package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-be/internal/apperror"
	"crm-be/internal/auth"
	"crm-be/internal/client"
	"crm-be/internal/middleware"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/report"
	"crm-be/internal/user"
	"crm-be/internal/utils"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type services struct {
	users    *MockUserService
	products *MockProductService
	clients  *MockClientService
	orders   *MockOrderService
	reports  *MockReportService
}

func newServices() *services {
	return &services{
		users:    new(MockUserService),
		products: new(MockProductService),
		clients:  new(MockClientService),
		orders:   new(MockOrderService),
		reports:  new(MockReportService),
	}
}

func (s *services) assertExpectations(t *testing.T) {
	s.users.AssertExpectations(t)
	s.products.AssertExpectations(t)
	s.clients.AssertExpectations(t)
	s.orders.AssertExpectations(t)
	s.reports.AssertExpectations(t)
}

func (s *services) server() http.Handler {
	srv := handler.NewDefaultServer(NewSchema(&Resolver{
		UserSvc:    s.users,
		ProductSvc: s.products,
		ClientSvc:  s.clients,
		OrderSvc:   s.orders,
		ReportSvc:  s.reports,
	}))
	srv.SetErrorPresenter(ErrorPresenter)
	return middleware.HTTPContext(srv)
}

type gqlError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

// asSeller authenticates the request the way the auth middleware does.
func asSeller(id string) func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		return r.WithContext(utils.SetUserContext(r.Context(), id))
	}
}

func post(t *testing.T, h http.Handler, query string, vars map[string]any, opts ...func(*http.Request) *http.Request) (*httptest.ResponseRecorder, gqlResponse) {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		req = opt(req)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

var createdAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewOrder(t *testing.T) {
	const mutation = `mutation($input: OrderInput!) {
		newOrder(input: $input) { id items { id quantity } total client seller status }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"client": "c1",
			"items":  []any{map[string]any{"id": "p1", "quantity": 3}},
			"total":  30,
		},
	}
	want := order.CreateInput{
		ClientID: "c1",
		Items:    []order.LineItem{{ProductID: "p1", Quantity: 3}},
		Total:    30,
	}

	t.Run("Success", func(t *testing.T) {
		s := newServices()
		s.orders.On("Create", mock.Anything, "s1", want).Return(&order.Order{
			ID:        "o1",
			Items:     want.Items,
			Total:     30,
			ClientID:  "c1",
			SellerID:  "s1",
			Status:    order.StatusPending,
			CreatedAt: createdAt,
		}, nil)

		rr, resp := post(t, s.server(), mutation, vars, asSeller("s1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t,
			`{"id":"o1","items":[{"id":"p1","quantity":3}],"total":30,"client":"c1","seller":"s1","status":"PENDING"}`,
			string(resp.Data["newOrder"]))
		s.assertExpectations(t)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		s := newServices()
		s.orders.On("Create", mock.Anything, "s1", want).
			Return(nil, apperror.New(apperror.ErrInsufficientStock, "the product Laptop exceeds the available quantity"))

		_, resp := post(t, s.server(), mutation, vars, asSeller("s1"))

		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "the product Laptop exceeds the available quantity", resp.Errors[0].Message)
		assert.Equal(t, "INSUFFICIENT_STOCK", resp.Errors[0].Extensions["code"])
		assert.Equal(t, []any{"newOrder"}, resp.Errors[0].Path)
		assert.JSONEq(t, `null`, string(resp.Data["newOrder"]))
	})

	t.Run("Forbidden", func(t *testing.T) {
		s := newServices()
		s.orders.On("Create", mock.Anything, "s2", want).
			Return(nil, apperror.New(apperror.ErrForbidden, "you do not have permission to access this resource"))

		_, resp := post(t, s.server(), mutation, vars, asSeller("s2"))

		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "FORBIDDEN", resp.Errors[0].Extensions["code"])
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		s := newServices()

		_, resp := post(t, s.server(), mutation, vars)

		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "UNAUTHENTICATED", resp.Errors[0].Extensions["code"])
		s.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InternalErrorHidden", func(t *testing.T) {
		s := newServices()
		s.orders.On("Create", mock.Anything, "s1", want).
			Return(nil, errors.New("pq: connection refused"))

		_, resp := post(t, s.server(), mutation, vars, asSeller("s1"))

		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "internal server error", resp.Errors[0].Message)
		assert.Equal(t, "INTERNAL", resp.Errors[0].Extensions["code"])
	})
}

func TestUpdateOrder_PartialInput(t *testing.T) {
	s := newServices()
	status := order.StatusCompleted
	s.orders.On("Revise", mock.Anything, "s1", "o1", order.ReviseInput{Status: &status}).
		Return(&order.Order{ID: "o1", ClientID: "c1", SellerID: "s1", Status: status, CreatedAt: createdAt}, nil)

	_, resp := post(t, s.server(),
		`mutation { updateOrder(id: "o1", input: {status: COMPLETED}) { id status } }`,
		nil, asSeller("s1"))

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"id":"o1","status":"COMPLETED"}`, string(resp.Data["updateOrder"]))
	s.assertExpectations(t)
}

func TestProductQueries(t *testing.T) {
	s := newServices()
	laptop := &product.Product{ID: "p1", Name: "Laptop", Stock: 10, Price: 500, CreatedAt: createdAt}
	s.products.On("Get", mock.Anything, "p1").Return(laptop, nil)
	s.products.On("List", mock.Anything).Return([]*product.Product{laptop}, nil)

	_, resp := post(t, s.server(),
		`{ first: product(id: "p1") { __typename name stock } products { id price } __typename }`, nil)

	assert.Empty(t, resp.Errors)
	assert.Equal(t, `{"__typename":"Product","name":"Laptop","stock":10}`, string(resp.Data["first"]))
	assert.JSONEq(t, `[{"id":"p1","price":500}]`, string(resp.Data["products"]))
	assert.JSONEq(t, `"Query"`, string(resp.Data["__typename"]))
	s.assertExpectations(t)
}

func TestNewProduct_RequiresAuth(t *testing.T) {
	s := newServices()

	_, resp := post(t, s.server(),
		`mutation { newProduct(input: {name: "Laptop", stock: 5, price: 100}) { id } }`, nil)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "authentication required", resp.Errors[0].Message)
	assert.Equal(t, "UNAUTHENTICATED", resp.Errors[0].Extensions["code"])
	s.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewClient(t *testing.T) {
	s := newServices()
	input := client.ClientInput{FirstName: "Ana", LastName: "Diaz", Email: "ana@mail.com"}
	s.clients.On("Create", mock.Anything, "s1", input).Return(&client.Client{
		ID: "c1", FirstName: "Ana", LastName: "Diaz", Email: "ana@mail.com", SellerID: "s1", CreatedAt: createdAt,
	}, nil)

	_, resp := post(t, s.server(),
		`mutation { newClient(input: {firstName: "Ana", lastName: "Diaz", email: "ana@mail.com"}) { id seller company } }`,
		nil, asSeller("s1"))

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"id":"c1","seller":"s1","company":null}`, string(resp.Data["newClient"]))
	s.assertExpectations(t)
}

func TestAuthenticateUser_SetsCookie(t *testing.T) {
	s := newServices()
	s.users.On("Authenticate", mock.Anything, "ana@mail.com", "secret").
		Return("signed.jwt.token", &user.User{ID: "u1", Email: "ana@mail.com"}, nil)

	rr, resp := post(t, s.server(),
		`mutation { authenticateUser(input: {email: "ana@mail.com", password: "secret"}) { token } }`, nil)

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, string(resp.Data["authenticateUser"]))

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.AccessTokenCookie {
			found = true
			assert.Equal(t, "signed.jwt.token", c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "expected %s cookie", auth.AccessTokenCookie)
}

func TestTopClients(t *testing.T) {
	s := newServices()
	s.reports.On("TopClients", mock.Anything).Return([]*report.TopClient{
		{Total: 900, Client: &client.Client{ID: "c1", FirstName: "Ana", SellerID: "s1", CreatedAt: createdAt}},
	}, nil)

	_, resp := post(t, s.server(), `{ topClients { total client { id firstName } } }`, nil)

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `[{"total":900,"client":{"id":"c1","firstName":"Ana"}}]`, string(resp.Data["topClients"]))
}

func TestIntrospection(t *testing.T) {
	s := newServices()
	h := s.server()

	t.Run("Schema", func(t *testing.T) {
		_, resp := post(t, h, `{ __schema { queryType { name } mutationType { name } subscriptionType { name } } }`, nil)

		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"queryType":{"name":"Query"},"mutationType":{"name":"Mutation"},"subscriptionType":null}`,
			string(resp.Data["__schema"]))
	})

	t.Run("ObjectType", func(t *testing.T) {
		_, resp := post(t, h, `{ __type(name: "Product") { kind name fields { name type { kind ofType { name } } } } }`, nil)

		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"kind":"OBJECT","name":"Product","fields":[
			{"name":"id","type":{"kind":"NON_NULL","ofType":{"name":"ID"}}},
			{"name":"name","type":{"kind":"NON_NULL","ofType":{"name":"String"}}},
			{"name":"stock","type":{"kind":"NON_NULL","ofType":{"name":"Int"}}},
			{"name":"price","type":{"kind":"NON_NULL","ofType":{"name":"Float"}}},
			{"name":"createdAt","type":{"kind":"NON_NULL","ofType":{"name":"String"}}}
		]}`, string(resp.Data["__type"]))
	})

	t.Run("EnumValues", func(t *testing.T) {
		_, resp := post(t, h, `query($n: String!) { status: __type(name: $n) { __typename enumValues { name } } }`,
			map[string]any{"n": "OrderStatus"})

		assert.Empty(t, resp.Errors)
		assert.Equal(t, `{"__typename":"__Type","enumValues":[{"name":"PENDING"},{"name":"COMPLETED"},{"name":"CANCELLED"}]}`,
			string(resp.Data["status"]))
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, resp := post(t, h, `{ __type(name: "Invoice") { name } }`, nil)

		assert.Empty(t, resp.Errors)
		assert.Equal(t, "null", string(resp.Data["__type"]))
	})

	s.assertExpectations(t)
}

func TestOrdersByStatus_InvalidEnum(t *testing.T) {
	s := newServices()

	rr, resp := post(t, s.server(), `{ ordersByStatus(status: SHIPPED) { id } }`, nil, asSeller("s1"))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.NotEmpty(t, resp.Errors)
	s.orders.AssertNotCalled(t, "ListBySellerAndStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPresentError(t *testing.T) {
	ctx := context.Background()

	err := presentError(ctx, apperror.New(apperror.ErrNotFound, "order does not exist"), nil)
	assert.Equal(t, "order does not exist", err.Message)
	assert.Equal(t, "NOT_FOUND", err.Extensions["code"])

	err = presentError(ctx, errors.New("boom"), nil)
	assert.Equal(t, internalMessage, err.Message)
	assert.Equal(t, "INTERNAL", err.Extensions["code"])
}

func TestDecodeArgs(t *testing.T) {
	var args struct {
		ID    string  `json:"id"`
		Stock int32   `json:"stock"`
		Price float64 `json:"price"`
	}
	err := decodeArgs(map[string]any{
		"id":    "p1",
		"stock": json.Number("7"),
		"price": int64(12),
	}, &args)

	require.NoError(t, err)
	assert.Equal(t, "p1", args.ID)
	assert.Equal(t, int32(7), args.Stock)
	assert.Equal(t, 12.0, args.Price)
}
