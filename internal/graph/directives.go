package graph

import (
	"context"

	"crm-be/internal/utils"

	"github.com/99designs/gqlgen/graphql"
)

// AuthDirective rejects anonymous callers on fields marked @auth.
func AuthDirective(ctx context.Context, obj any, next graphql.Resolver) (res any, err error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, ErrUnauthenticated
	}
	return next(ctx)
}
