package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS allows the configured origins. A "*" entry allows any origin, and then
// credentials are never allowed.
func CORS(origins []string) func(http.Handler) http.Handler {
	wildcard := false
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			wildcard = true
		}
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	if wildcard {
		allowed = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
