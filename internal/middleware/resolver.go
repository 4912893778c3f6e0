package middleware

import (
	"net/http"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

// Resolver places r in every request context, so components rendered by the
// handlers merge classes with the configured conflict families.
func Resolver(r *tw.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(tw.WithResolver(req.Context(), r)))
		})
	}
}
