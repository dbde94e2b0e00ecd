package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/upb/biztime/utils"
)

// Timeout bounds each request with a context deadline. Handlers see the
// deadline through r.Context() and usually answer it themselves; a 504
// envelope is written here only when nothing was written before it passed.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				_ = utils.WriteError(w, http.StatusGatewayTimeout, "Request timed out", nil)
			}
		})
	}
}
