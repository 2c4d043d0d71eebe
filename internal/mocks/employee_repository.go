package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByCPF(ctx context.Context, cpf string) (employee.Employee, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Count(ctx context.Context, filter employee.EmployeeFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *EmployeeRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, emp)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) SetActive(ctx context.Context, id string, active bool) (employee.Employee, error) {
	args := m.Called(ctx, id, active)
	return args.Get(0).(employee.Employee), args.Error(1)
}
