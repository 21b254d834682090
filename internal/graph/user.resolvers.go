package graph

import (
	"context"

	"crm-be/internal/auth"
	"crm-be/internal/graph/model"
	"crm-be/internal/logger"
	"crm-be/internal/transport"
	"crm-be/internal/user"

	"go.uber.org/zap"
)

// NewUser is the resolver for the newUser field.
func (r *mutationResolver) NewUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	u, err := r.UserSvc.Register(ctx, user.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		return nil, err
	}
	return toUserModel(u), nil
}

// AuthenticateUser is the resolver for the authenticateUser field. The token
// is returned and also set as an HttpOnly cookie for browser clients.
func (r *mutationResolver) AuthenticateUser(ctx context.Context, input model.AuthInput) (*model.Token, error) {
	token, u, err := r.UserSvc.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if !transport.SetAuthCookie(ctx, auth.AccessTokenCookie, token, user.TokenTTL) {
		logger.FromCtx(ctx).Debug("no http response to set auth cookie on", zap.String("user_id", u.ID))
	}

	return &model.Token{Token: token}, nil
}

// CurrentUser is the resolver for the currentUser field.
func (r *queryResolver) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	u, err := r.UserSvc.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return toUserModel(u), nil
}
