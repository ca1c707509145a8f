package middleware

import (
	"customer-dashboard/internal/config"
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
)

// CORS answers preflights and sets CORS headers for allowed origins. Origins
// are matched by go-chi/cors, so entries may be exact, "*" or carry one
// wildcard such as "http://*.example.com". A request whose Origin the library
// did not allow is refused with 403 before it reaches any handler. Requests
// without an Origin header pass through.
func CORS(cfg config.CORSConfig, logger *slog.Logger) func(next http.Handler) http.Handler {
	headers := cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})

	return func(next http.Handler) http.Handler {
		return headers(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && w.Header().Get("Access-Control-Allow-Origin") == "" {
				logger.WarnContext(r.Context(), "Rejected request from disallowed origin", "origin", origin, "path", r.URL.Path)
				writeJSONError(w, http.StatusForbidden, "Origin not allowed")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
