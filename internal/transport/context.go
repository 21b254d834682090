// Package transport carries the HTTP request and response writer through the
// GraphQL execution so resolvers can touch cookies.
package transport

import (
	"context"
	"net/http"
	"time"
)

type ctxKey string

const (
	requestKey        ctxKey = "httpRequest"
	responseWriterKey ctxKey = "httpResponseWriter"
)

func WithHTTP(ctx context.Context, r *http.Request, w http.ResponseWriter) context.Context {
	ctx = context.WithValue(ctx, requestKey, r)
	ctx = context.WithValue(ctx, responseWriterKey, w)
	return ctx
}

func GetRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(requestKey).(*http.Request)
	return r
}

func GetResponseWriter(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w
}

// SetAuthCookie writes the access token cookie. It reports false when ctx does
// not come from an HTTP request.
func SetAuthCookie(ctx context.Context, name, token string, ttl time.Duration) bool {
	w := GetResponseWriter(ctx)
	if w == nil {
		return false
	}

	secure := false
	if r := GetRequest(ctx); r != nil && r.TLS != nil {
		secure = true
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
