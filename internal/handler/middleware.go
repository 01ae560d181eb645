package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/model"
)

type contextKey struct{}

// claimsKey carries the verified session claims through the request
// context.
var claimsKey = contextKey{}

// ClaimsFromContext returns the verified session claims placed into the
// context by the role gate.
func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.SessionClaims)
	return claims, ok
}

// RoleGate authenticates requests from the session cookie and enforces
// per-route role requirements. It is a pure function of the cookie and the
// required role set; it has no side effects.
type RoleGate struct {
	jwtAuth auth.JWTAuthenticator
	cookies auth.CookieManager
}

// NewRoleGate creates a new RoleGate instance.
func NewRoleGate(jwtAuth auth.JWTAuthenticator, cookies auth.CookieManager) *RoleGate {
	return &RoleGate{
		jwtAuth: jwtAuth,
		cookies: cookies,
	}
}

// Authenticate verifies the session cookie and stores the claims in the
// request context. Missing cookies and invalid or expired tokens both end
// the request with 401.
func (g *RoleGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := g.cookies.Read(r)
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := g.jwtAuth.Verify(token)
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, "Invalid authentication token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole permits only the given roles past. It must run after
// Authenticate.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				renderError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			renderError(w, r, http.StatusForbidden, "Forbidden")
		})
	}
}

// RequestID tags every request with an id and threads a request-scoped
// logger through the context.
func RequestID(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)

			reqLogger := logger.With().Str("request_id", id).Logger()
			ctx := reqLogger.WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
