// Package userctx carries the request's user identity. The API is
// scoped per user via the X-User-ID header, which stands in for the
// session principal.
package userctx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{}

// Middleware rejects requests without a valid X-User-ID header and puts
// the parsed id on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			http.Error(w, "missing or invalid X-User-ID header", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, id)))
	})
}

// FromContext returns the user id set by Middleware. It panics when the
// middleware did not run; every route under /api/v1 carries it.
func FromContext(ctx context.Context) uuid.UUID {
	return ctx.Value(contextKey{}).(uuid.UUID)
}
