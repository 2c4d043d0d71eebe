package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/database"
)

const employeeColumns = `id, name, cpf, role, active, password_hash, created_at, updated_at`

const pgUniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.CPF, &emp.Role, &emp.Active,
		&emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetByCPF implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCPF(ctx context.Context, cpf string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	// LIMIT 2 is enough to tell one match from many
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE cpf = $1 LIMIT 2`

	rows, err := q.Query(ctx, query, cpf)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to query employee by cpf: %w", err)
	}
	defer rows.Close()

	var found []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return employee.Employee{}, err
		}
		found = append(found, emp)
	}
	if err := rows.Err(); err != nil {
		return employee.Employee{}, err
	}

	switch len(found) {
	case 0:
		return employee.Employee{}, employee.ErrEmployeeNotFound
	case 1:
		return found[0], nil
	}
	return employee.Employee{}, employee.ErrDuplicateRecord
}

func buildEmployeeFilter(filter employee.EmployeeFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("active = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	where, args := buildEmployeeFilter(filter)
	query := `SELECT ` + employeeColumns + ` FROM employees` + where + ` ORDER BY name ASC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context, filter employee.EmployeeFilter) (int, error) {
	q := GetQuerier(ctx, e.db)

	where, args := buildEmployeeFilter(filter)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// ExistsByCPF implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE cpf = $1)`, cpf).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check cpf: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate id: %w", err)
	}

	query := `
		INSERT INTO employees (id, name, cpf, role, active, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		id.String(), newEmployee.Name, newEmployee.CPF, newEmployee.Role, newEmployee.Active, newEmployee.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrCPFExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. A nil PasswordHash keeps the stored one.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, password_hash = COALESCE($2, password_hash), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, emp.Name, emp.PasswordHash, emp.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	return updated, nil
}

// SetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, active, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to set active for employee with id %s: %w", id, err)
	}
	return updated, nil
}
