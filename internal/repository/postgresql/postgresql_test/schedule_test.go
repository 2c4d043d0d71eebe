package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
)

func strPtr(s string) *string { return &s }

func TestWorkScheduleRepository_CRUD(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkScheduleRepository(db.DB)
	emp := createTestEmployee(t, ctx, "Karen", employee.RoleEmployee)

	friday, err := repo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: emp.ID, Weekday: schedule.Friday, StartTime: "08:00", EndTime: "12:00",
	})
	require.NoError(t, err)
	assert.Nil(t, friday.BreakStart)

	monday, err := repo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: emp.ID, Weekday: schedule.Monday, StartTime: "09:00", EndTime: "18:00",
		BreakStart: strPtr("12:00"), BreakEnd: strPtr("13:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", monday.StartTime)
	require.NotNil(t, monday.BreakEnd)
	assert.Equal(t, "13:00", *monday.BreakEnd)

	list, err := repo.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, schedule.Monday, list[0].Weekday)
	assert.Equal(t, schedule.Friday, list[1].Weekday)

	monday.EndTime = "17:30"
	updated, err := repo.Update(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, "17:30", updated.EndTime)

	got, err := repo.GetByID(ctx, monday.ID)
	require.NoError(t, err)
	assert.Equal(t, "17:30", got.EndTime)

	require.NoError(t, repo.Delete(ctx, friday.ID))
	_, err = repo.GetByID(ctx, friday.ID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestWorkScheduleRepository_WeekdayTaken(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkScheduleRepository(db.DB)
	emp := createTestEmployee(t, ctx, "Leo", employee.RoleEmployee)

	_, err := repo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: emp.ID, Weekday: schedule.Tuesday, StartTime: "08:00", EndTime: "17:00",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: emp.ID, Weekday: schedule.Tuesday, StartTime: "10:00", EndTime: "14:00",
	})
	assert.ErrorIs(t, err, schedule.ErrWeekdayTaken)

	wed, err := repo.Create(ctx, schedule.WorkSchedule{
		EmployeeID: emp.ID, Weekday: schedule.Wednesday, StartTime: "08:00", EndTime: "17:00",
	})
	require.NoError(t, err)

	wed.Weekday = schedule.Tuesday
	_, err = repo.Update(ctx, wed)
	assert.ErrorIs(t, err, schedule.ErrWeekdayTaken)
}

func TestWorkScheduleRepository_MissingRows(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkScheduleRepository(db.DB)
	missing := "0190b1a0-0000-7000-8000-000000000000"

	err := repo.Delete(ctx, missing)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	_, err = repo.Update(ctx, schedule.WorkSchedule{ID: missing, Weekday: schedule.Monday, StartTime: "08:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
