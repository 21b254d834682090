package graph

import (
	"crm-be/internal/client"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/report"
	"crm-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

type Resolver struct {
	UserSvc    user.Service
	ProductSvc product.Service
	ClientSvc  client.Service
	OrderSvc   order.Service
	ReportSvc  report.Service
}

func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }
func (r *Resolver) Query() QueryResolver       { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}
