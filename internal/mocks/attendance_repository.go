package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*attendance.Day, error) {
	args := m.Called(ctx, employeeID, date, forUpdate)
	day, _ := args.Get(0).(*attendance.Day)
	return day, args.Error(1)
}

func (m *AttendanceRepository) UpsertField(ctx context.Context, employeeID string, date time.Time, action attendance.Action, ts time.Time) (attendance.Day, error) {
	args := m.Called(ctx, employeeID, date, action, ts)
	return args.Get(0).(attendance.Day), args.Error(1)
}

func (m *AttendanceRepository) FindRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Day, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]attendance.Day), args.Error(1)
}

func (m *AttendanceRepository) Recent(ctx context.Context, employeeID string, limit int) ([]attendance.Day, error) {
	args := m.Called(ctx, employeeID, limit)
	return args.Get(0).([]attendance.Day), args.Error(1)
}
