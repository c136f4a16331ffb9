package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"talentmap/internal/identity"
	"talentmap/pkg/requestcontext"
)

// TokenValidator defines the interface for validating bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*identity.Identity, error)
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth validates the bearer token and injects the resolved identity
// into the request context. Requests without a valid token are rejected.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := resolveIdentity(validator, r, logger)
			if !ok {
				requestID := requestcontext.RequestID(r.Context())
				logger.WarnContext(r.Context(), "unauthorized access - invalid or missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}
			ctx := requestcontext.WithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves an identity when a valid bearer token is present and
// otherwise lets the request through anonymously. Used on public routes whose
// sibling verbs mutate, so one route tree serves both cases.
func OptionalAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ident, ok := resolveIdentity(validator, r, logger); ok {
				ctx := requestcontext.WithIdentity(r.Context(), ident)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveIdentity(validator TokenValidator, r *http.Request, logger *slog.Logger) (*identity.Identity, bool) {
	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
	if !ok || token == "" {
		return nil, false
	}
	ident, err := validator.ValidateToken(token)
	if err != nil {
		logger.WarnContext(r.Context(), "token validation failed",
			"error", err,
			"request_id", requestcontext.RequestID(r.Context()),
		)
		return nil, false
	}
	return ident, true
}
