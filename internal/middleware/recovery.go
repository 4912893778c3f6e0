package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/vango-dev/vango-ui/internal/logger"
)

// Recovery turns a panicking handler into a 500 response and logs the panic
// with its stack.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.WithFields(map[string]any{
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				}).Error(fmt.Errorf("panic: %v", rec), "handler panicked")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
