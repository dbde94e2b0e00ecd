package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// Recoverer turns a panic into a 500 error envelope and logs the stack
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler is how net/http aborts a response; let it through
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", GetRequestIDFromContext(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.ByteString("stack", debug.Stack()))

				_ = utils.WriteInternalServerError(w, "An unexpected error occurred")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
