package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages employees, schedules and reports
	RoleEmployee Role = "employee" // Clocks in and out
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type Employee struct {
	ID           string
	Name         string
	CPF          string
	Role         Role
	Active       bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the employee record is an administrator account
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
