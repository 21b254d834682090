package graph

import (
	"context"

	"crm-be/internal/graph/model"
)

type QueryResolver interface {
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	Products(ctx context.Context) ([]*model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	SearchProducts(ctx context.Context, text string) ([]*model.Product, error)
	Clients(ctx context.Context) ([]*model.Client, error)
	SellerClients(ctx context.Context) ([]*model.Client, error)
	Client(ctx context.Context, id string) (*model.Client, error)
	Orders(ctx context.Context) ([]*model.Order, error)
	SellerOrders(ctx context.Context) ([]*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]*model.Order, error)
	TopClients(ctx context.Context) ([]*model.TopClient, error)
	TopSellers(ctx context.Context) ([]*model.TopSeller, error)
}

type MutationResolver interface {
	NewUser(ctx context.Context, input model.UserInput) (*model.User, error)
	AuthenticateUser(ctx context.Context, input model.AuthInput) (*model.Token, error)
	NewProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (*string, error)
	NewClient(ctx context.Context, input model.ClientInput) (*model.Client, error)
	UpdateClient(ctx context.Context, id string, input model.ClientInput) (*model.Client, error)
	DeleteClient(ctx context.Context, id string) (*string, error)
	NewOrder(ctx context.Context, input model.OrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, input model.OrderUpdateInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) (*string, error)
}

type idArgs struct {
	ID string `json:"id"`
}

var queryFields = map[string]fieldFunc{
	"currentUser": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Token string `json:"token"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().CurrentUser(ctx, a.Token)
	},
	"products": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().Products(ctx)
	},
	"product": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().Product(ctx, a.ID)
	},
	"searchProducts": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Text string `json:"text"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().SearchProducts(ctx, a.Text)
	},
	"clients": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().Clients(ctx)
	},
	"sellerClients": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().SellerClients(ctx)
	},
	"client": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().Client(ctx, a.ID)
	},
	"orders": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().Orders(ctx)
	},
	"sellerOrders": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().SellerOrders(ctx)
	},
	"order": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().Order(ctx, a.ID)
	},
	"ordersByStatus": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Status model.OrderStatus `json:"status"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Query().OrdersByStatus(ctx, a.Status)
	},
	"topClients": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().TopClients(ctx)
	},
	"topSellers": func(ctx context.Context, r ResolverRoot, _ map[string]any) (any, error) {
		return r.Query().TopSellers(ctx)
	},
}

var mutationFields = map[string]fieldFunc{
	"newUser": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Input model.UserInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().NewUser(ctx, a.Input)
	},
	"authenticateUser": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Input model.AuthInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().AuthenticateUser(ctx, a.Input)
	},
	"newProduct": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Input model.ProductInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().NewProduct(ctx, a.Input)
	},
	"updateProduct": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			ID    string             `json:"id"`
			Input model.ProductInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().UpdateProduct(ctx, a.ID, a.Input)
	},
	"deleteProduct": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().DeleteProduct(ctx, a.ID)
	},
	"newClient": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Input model.ClientInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().NewClient(ctx, a.Input)
	},
	"updateClient": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			ID    string            `json:"id"`
			Input model.ClientInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().UpdateClient(ctx, a.ID, a.Input)
	},
	"deleteClient": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().DeleteClient(ctx, a.ID)
	},
	"newOrder": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			Input model.OrderInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().NewOrder(ctx, a.Input)
	},
	"updateOrder": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a struct {
			ID    string                 `json:"id"`
			Input model.OrderUpdateInput `json:"input"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().UpdateOrder(ctx, a.ID, a.Input)
	},
	"deleteOrder": func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error) {
		var a idArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return r.Mutation().DeleteOrder(ctx, a.ID)
	},
}
