package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
)

type principalKey struct{}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// CurrentPrincipal returns the caller set by AuthRequired.
func CurrentPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}

// AuthRequired must run after jwtauth.Verifier. It accepts access tokens
// only, rejects revoked ones and puts the Principal in the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal, ok := principalFromClaims(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}

func principalFromClaims(claims map[string]interface{}) (auth.Principal, bool) {
	tokenType, _ := claims["type"].(string)
	if tokenType != jwt.TokenTypeAccess {
		return auth.Principal{}, false
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return auth.Principal{}, false
	}
	name, _ := claims["name"].(string)

	return auth.Principal{
		UserID: userID,
		Name:   name,
		Role:   employee.Role(role),
	}, true
}
