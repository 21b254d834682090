package graph

import (
	"context"

	"crm-be/internal/graph/model"
)

// TopClients is the resolver for the topClients field.
func (r *queryResolver) TopClients(ctx context.Context) ([]*model.TopClient, error) {
	rows, err := r.ReportSvc.TopClients(ctx)
	if err != nil {
		return nil, err
	}
	return toTopClientModels(rows), nil
}

// TopSellers is the resolver for the topSellers field.
func (r *queryResolver) TopSellers(ctx context.Context) ([]*model.TopSeller, error) {
	rows, err := r.ReportSvc.TopSellers(ctx)
	if err != nil {
		return nil, err
	}
	return toTopSellerModels(rows), nil
}
