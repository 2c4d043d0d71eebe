package middleware

import (
	"net/http"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

// RequireRole lets the request through when the caller has one of roles.
func RequireRole(roles ...employee.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := CurrentPrincipal(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.HandleError(w, auth.ErrForbidden)
		})
	}
}

var (
	AdminOnly    = RequireRole(employee.RoleAdmin)
	EmployeeOnly = RequireRole(employee.RoleEmployee)
)
