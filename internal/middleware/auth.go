package middleware

import (
	"net/http"

	"crm-be/internal/auth"
	"crm-be/internal/logger"
	"crm-be/internal/user"
	"crm-be/internal/utils"

	"go.uber.org/zap"
)

// AuthMiddleware attaches the seller described by a valid access token to the
// request context. Requests without a usable token continue anonymously and
// are turned away later by fields that need a seller.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			logger.FromCtx(r.Context()).Debug("ignoring access token", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID)
		ctx = logger.WithSellerID(ctx, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
