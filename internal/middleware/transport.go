package middleware

import (
	"net/http"

	"crm-be/internal/transport"
)

// HTTPContext exposes the request and response writer to resolvers, which need
// them to set the auth cookie.
func HTTPContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := transport.WithHTTP(r.Context(), r, w)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
