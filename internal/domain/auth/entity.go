package auth

import "github.com/pontoseguro/ponto-backend-go/internal/domain/employee"

// Principal is the authenticated caller, built from access token claims.
type Principal struct {
	UserID string
	Name   string
	Role   employee.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == employee.RoleAdmin
}

func (p Principal) IsEmployee() bool {
	return p.Role == employee.RoleEmployee
}
