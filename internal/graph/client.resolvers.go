package graph

import (
	"context"

	"crm-be/internal/graph/model"
	"crm-be/internal/utils"
)

// NewClient is the resolver for the newClient field.
func (r *mutationResolver) NewClient(ctx context.Context, input model.ClientInput) (*model.Client, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := r.ClientSvc.Create(ctx, seller, toClientInput(input))
	if err != nil {
		return nil, err
	}
	return toClientModel(c), nil
}

// UpdateClient is the resolver for the updateClient field.
func (r *mutationResolver) UpdateClient(ctx context.Context, id string, input model.ClientInput) (*model.Client, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := r.ClientSvc.Update(ctx, seller, id, toClientInput(input))
	if err != nil {
		return nil, err
	}
	return toClientModel(c), nil
}

// DeleteClient is the resolver for the deleteClient field.
func (r *mutationResolver) DeleteClient(ctx context.Context, id string) (*string, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.ClientSvc.Delete(ctx, seller, id); err != nil {
		return nil, err
	}
	return utils.StrPtr("client deleted"), nil
}

// Clients is the resolver for the clients field.
func (r *queryResolver) Clients(ctx context.Context) ([]*model.Client, error) {
	clients, err := r.ClientSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientModels(clients), nil
}

// SellerClients is the resolver for the sellerClients field.
func (r *queryResolver) SellerClients(ctx context.Context) ([]*model.Client, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := r.ClientSvc.ListBySeller(ctx, seller)
	if err != nil {
		return nil, err
	}
	return toClientModels(clients), nil
}

// Client is the resolver for the client field.
func (r *queryResolver) Client(ctx context.Context, id string) (*model.Client, error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := r.ClientSvc.Get(ctx, seller, id)
	if err != nil {
		return nil, err
	}
	return toClientModel(c), nil
}
