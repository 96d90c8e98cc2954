package http

import (
	"context"
	"net/http"
	"strings"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// identityFromContext returns the authenticated identity, or nil for an
// anonymous request.
func identityFromContext(ctx context.Context) *security.Identity {
	id, _ := ctx.Value(identityKey).(*security.Identity)
	return id
}

// authMiddleware resolves the bearer token into an identity when present.
// It never rejects: authorization decisions belong to requireRole, so public
// routes can share the chain.
func authMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := tokens.ValidateToken(token); err == nil && claims.Type == security.TokenTypeAccess {
					identity := &security.Identity{
						UserID: claims.UserID,
						Email:  claims.Email,
						Role:   claims.Role,
					}
					r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireRole applies the access gate and renders its decision: anonymous
// callers get 401 with the login location, wrong-role callers get 403 with
// their own dashboard location.
func requireRole(required domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromContext(r.Context())
		decision := security.Authorize(required, identity)
		switch decision.Kind {
		case security.DecisionAllow:
			next(w, r)
		case security.DecisionRedirectLogin:
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required", Location: decision.Location})
		case security.DecisionRedirectToHome:
			writeJSON(w, http.StatusForbidden, errorBody{Error: "access denied for this role", Location: decision.Location})
		}
	}
}

// requireAuth admits any authenticated identity regardless of role.
func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return requireRole("", next)
}
