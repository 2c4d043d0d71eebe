package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
)

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	created := createTestEmployee(t, ctx, "Maria Souza", employee.RoleEmployee)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)

	byCPF, err := repo.GetByCPF(ctx, created.CPF)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCPF.ID)
	assert.Equal(t, "Maria Souza", byCPF.Name)
	require.NotNil(t, byCPF.PasswordHash)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CPF, byID.CPF)

	exists, err := repo.ExistsByCPF(ctx, created.CPF)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCPF(ctx, "99999999999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmployeeRepository_NotFound(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	_, err := repo.GetByCPF(ctx, "99999999999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.GetByID(ctx, "0190b1a0-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DuplicateCPF(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	first := createTestEmployee(t, ctx, "Ana", employee.RoleEmployee)

	_, err := repo.Create(ctx, employee.Employee{
		Name:   "Outra Ana",
		CPF:    first.CPF,
		Role:   employee.RoleEmployee,
		Active: true,
	})
	assert.ErrorIs(t, err, employee.ErrCPFExists)
}

func TestEmployeeRepository_ListAndCountFilters(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	createTestEmployee(t, ctx, "Admin", employee.RoleAdmin)
	active := createTestEmployee(t, ctx, "Bruno", employee.RoleEmployee)
	inactive := createTestEmployee(t, ctx, "Carla", employee.RoleEmployee)
	_, err := repo.SetActive(ctx, inactive.ID, false)
	require.NoError(t, err)

	role := string(employee.RoleEmployee)
	all, err := repo.List(ctx, employee.EmployeeFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	yes := true
	onlyActive, err := repo.List(ctx, employee.EmployeeFilter{Role: &role, Active: &yes})
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)

	count, err := repo.Count(ctx, employee.EmployeeFilter{Role: &role, Active: &yes})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	total, err := repo.Count(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestEmployeeRepository_UpdateKeepsPasswordWhenNil(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	created := createTestEmployee(t, ctx, "Diego", employee.RoleEmployee)

	created.Name = "Diego Lima"
	created.PasswordHash = nil
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Diego Lima", updated.Name)
	require.NotNil(t, updated.PasswordHash)

	newHash := "$2a$10$zyxwvutsrqponmlkjihgfe"
	updated.PasswordHash = &newHash
	updated, err = repo.Update(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, newHash, *updated.PasswordHash)

	_, err = repo.Update(ctx, employee.Employee{ID: "0190b1a0-0000-7000-8000-000000000000", Name: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_SetActive(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db.DB)

	created := createTestEmployee(t, ctx, "Elisa", employee.RoleEmployee)

	updated, err := repo.SetActive(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = repo.SetActive(ctx, "0190b1a0-0000-7000-8000-000000000000", true)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
