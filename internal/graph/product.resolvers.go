package graph

import (
	"context"

	"crm-be/internal/graph/model"
	"crm-be/internal/utils"
)

// NewProduct is the resolver for the newProduct field.
func (r *mutationResolver) NewProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	p, err := r.ProductSvc.Create(ctx, toProductInput(input))
	if err != nil {
		return nil, err
	}
	return toProductModel(p), nil
}

// UpdateProduct is the resolver for the updateProduct field.
func (r *mutationResolver) UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	p, err := r.ProductSvc.Update(ctx, id, toProductInput(input))
	if err != nil {
		return nil, err
	}
	return toProductModel(p), nil
}

// DeleteProduct is the resolver for the deleteProduct field.
func (r *mutationResolver) DeleteProduct(ctx context.Context, id string) (*string, error) {
	if err := r.ProductSvc.Delete(ctx, id); err != nil {
		return nil, err
	}
	return utils.StrPtr("product deleted"), nil
}

// Products is the resolver for the products field.
func (r *queryResolver) Products(ctx context.Context) ([]*model.Product, error) {
	products, err := r.ProductSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductModels(products), nil
}

// Product is the resolver for the product field.
func (r *queryResolver) Product(ctx context.Context, id string) (*model.Product, error) {
	p, err := r.ProductSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductModel(p), nil
}

// SearchProducts is the resolver for the searchProducts field.
func (r *queryResolver) SearchProducts(ctx context.Context, text string) ([]*model.Product, error) {
	products, err := r.ProductSvc.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return toProductModels(products), nil
}
