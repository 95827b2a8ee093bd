package middleware

import (
	"net/http"
	"strconv"

	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// Identity reads the acting user id forwarded by the upstream auth layer
// in the X-User-ID header and places it in the request context. This
// service trusts the gateway; it never authenticates by itself.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-User-ID")
			if header != "" {
				actorID, err := strconv.ParseInt(header, 10, 64)
				if err != nil {
					logger.Warn("Malformed X-User-ID header",
						zap.String("value", header),
						zap.String("path", r.URL.Path),
					)
				} else {
					r = r.WithContext(utils.SetActorContext(r.Context(), actorID))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireIdentity rejects requests that arrived without a resolvable actor
func RequireIdentity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetActorIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
