package middleware

import (
	"context"
	"net/http"
	"time"

	"med-schedule/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// RequestLog deja en el contexto un logger con request_id y registra cada
// request al terminar. Requiere chimw.RequestID antes en la cadena.
func RequestLog(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			l := base.With(map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
			})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := WithLogger(r.Context(), l)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}

			switch {
			case status >= 500:
				l.Error("request failed", fields)
			case status >= 400:
				l.Warn("request rejected", fields)
			default:
				l.Info("request", fields)
			}
		})
	}
}

// WithLogger deja l en ctx (fuera de HTTP: tests, seed).
func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// GetLogger devuelve el logger del request, o Nop si no hay.
func GetLogger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
