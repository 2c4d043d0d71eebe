package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByCPF returns ErrDuplicateRecord when the CPF matches more than one row.
	GetByCPF(ctx context.Context, cpf string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Count(ctx context.Context, filter EmployeeFilter) (int, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	SetActive(ctx context.Context, id string, active bool) (Employee, error)
}
