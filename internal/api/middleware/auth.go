package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	AccountIDKey contextKey = "accountID"
	EmailKey     contextKey = "email"
)

// TokenValidator checks a session token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.MapClaims, error)
}

// Auth rejects requests without a valid bearer session token.
func Auth(validator TokenValidator, logger logging.Logger) func(http.Handler) http.Handler {
	logger = logger.With("component", "middleware.Auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(ctx, "missing authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				logger.Warn(ctx, "invalid authorization header format")
				writeError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				logger.Warn(ctx, "token validation failed", "error", err)
				writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			subject, ok := (*claims)["sub"].(string)
			if !ok {
				logger.Warn(ctx, "missing 'sub' claim in token")
				writeError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			accountID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn(ctx, "failed to parse account ID", "error", err)
				writeError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			email, _ := (*claims)["email"].(string)

			ctx = context.WithValue(ctx, AccountIDKey, accountID)
			ctx = context.WithValue(ctx, EmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAccountID(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(uuid.UUID)
	return accountID, ok
}

func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
