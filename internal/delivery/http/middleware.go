package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// Authenticate rejects requests without a valid bearer token and stores the
// parsed claims on the request context.
func Authenticate(tokens *security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}
			claims, err := tokens.Parse(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireStaff gates admin-only routes.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || !claims.IsStaff {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ClaimsFromContext(ctx context.Context) *security.Claims {
	claims, _ := ctx.Value(claimsKey).(*security.Claims)
	return claims
}

// ScopeFromContext derives the row visibility of the requesting user.
func ScopeFromContext(ctx context.Context) domain.ClientScope {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return domain.ClientScope{}
	}
	return domain.ClientScope{UserID: claims.UserID, Staff: claims.IsStaff}
}

// ActorFromContext names the user recorded in the audit trail.
func ActorFromContext(ctx context.Context) string {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return ""
	}
	return claims.UserID
}
