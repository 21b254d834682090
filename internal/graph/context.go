package graph

import (
	"context"

	"crm-be/internal/utils"
)

// sellerID returns the authenticated seller, which every ownership check
// compares against.
func sellerID(ctx context.Context) (string, error) {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	return id, nil
}
