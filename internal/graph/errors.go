package graph

import (
	"context"
	"errors"

	"crm-be/internal/apperror"
	"crm-be/internal/logger"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

var ErrUnauthenticated = apperror.New(apperror.ErrUnauthenticated, "authentication required")

const internalMessage = "internal server error"

// presentError turns a resolver error into a client error with an
// extensions.code. Errors of no known kind are logged and hidden.
func presentError(ctx context.Context, err error, path ast.Path) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		if gqlErr.Path == nil {
			gqlErr.Path = path
		}
		return gqlErr
	}

	code := apperror.Code(err)
	msg := err.Error()
	if code == "INTERNAL" {
		logger.FromCtx(ctx).Error("resolver failed", zap.String("path", path.String()), zap.Error(err))
		msg = internalMessage
	}

	return &gqlerror.Error{
		Message:    msg,
		Path:       path,
		Extensions: map[string]any{"code": code},
	}
}

// ErrorPresenter is installed on the handler for errors raised outside the
// resolvers, such as request parsing and validation.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	return presentError(ctx, err, nil)
}
