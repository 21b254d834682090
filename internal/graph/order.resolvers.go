package graph

import (
	"context"

	"crm-be/internal/graph/model"
	"crm-be/internal/order"
	"crm-be/internal/utils"
)

// NewOrder is the resolver for the newOrder field.
func (r *mutationResolver) NewOrder(ctx context.Context, input model.OrderInput) (*model.Order, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := r.OrderSvc.Create(ctx, seller, order.CreateInput{
		ClientID: input.Client,
		Items:    toLineItems(input.Items),
		Total:    input.Total,
		Status:   toOrderStatus(input.Status),
	})
	if err != nil {
		return nil, err
	}
	return toOrderModel(o), nil
}

// UpdateOrder is the resolver for the updateOrder field.
func (r *mutationResolver) UpdateOrder(ctx context.Context, id string, input model.OrderUpdateInput) (*model.Order, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := r.OrderSvc.Revise(ctx, seller, id, order.ReviseInput{
		ClientID: utils.TrimPtr(input.Client),
		Items:    toLineItems(input.Items),
		Total:    input.Total,
		Status:   toOrderStatus(input.Status),
	})
	if err != nil {
		return nil, err
	}
	return toOrderModel(o), nil
}

// DeleteOrder is the resolver for the deleteOrder field.
func (r *mutationResolver) DeleteOrder(ctx context.Context, id string) (*string, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.OrderSvc.Delete(ctx, seller, id); err != nil {
		return nil, err
	}
	return utils.StrPtr("order deleted"), nil
}

// Orders is the resolver for the orders field.
func (r *queryResolver) Orders(ctx context.Context) ([]*model.Order, error) {
	orders, err := r.OrderSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderModels(orders), nil
}

// SellerOrders is the resolver for the sellerOrders field.
func (r *queryResolver) SellerOrders(ctx context.Context) ([]*model.Order, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := r.OrderSvc.ListBySeller(ctx, seller)
	if err != nil {
		return nil, err
	}
	return toOrderModels(orders), nil
}

// Order is the resolver for the order field.
func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := r.OrderSvc.Get(ctx, seller, id)
	if err != nil {
		return nil, err
	}
	return toOrderModel(o), nil
}

// OrdersByStatus is the resolver for the ordersByStatus field.
func (r *queryResolver) OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]*model.Order, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := r.OrderSvc.ListBySellerAndStatus(ctx, seller, order.Status(status))
	if err != nil {
		return nil, err
	}
	return toOrderModels(orders), nil
}
