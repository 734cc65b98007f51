package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/learning-journal/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500. http.ErrAbortHandler is
// re-raised so net/http drops the connection. When Logger wraps this
// middleware and the handler had already started its response, nothing more
// is written.
func Recovery(logger *slog.Logger) Middleware {
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

				attrs := []slog.Attr{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				}
				if id, ok := r.Context().Value(identityKey{}).(*requestIdentity); ok && id.userID > 0 {
					attrs = append(attrs, slog.Int64("user_id", id.userID))
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if sw, ok := w.(*statusWriter); ok && sw.wroteHeader {
					return
				}
				w.Header().Set("Cache-Control", "no-store")
				http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
