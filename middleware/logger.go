package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/asset-tracker/userctx"
)

// RequestLogger logs one line per request and attaches a request scoped logger to the context.
// Mutating requests are logged at info with the acting user, reads at debug.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLogger := logger.With(
				"request_id", chimiddleware.GetReqID(r.Context()),
				"user_id", userctx.GetUserID(r.Context()),
			)
			ctx := userctx.WithLogger(r.Context(), reqLogger)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"duration", time.Since(start),
					"bytes", ww.BytesWritten(),
					"ip", getIPAddress(r),
				}

				switch {
				case status >= http.StatusInternalServerError:
					reqLogger.ErrorContext(ctx, "request failed", attrs...)
				case isMutation(r.Method):
					attrs = append(attrs, "user_email", userctx.GetUserEmail(r.Context()), "user_agent", r.UserAgent())
					reqLogger.InfoContext(ctx, "mutation", attrs...)
				default:
					reqLogger.DebugContext(ctx, "request", attrs...)
				}
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
