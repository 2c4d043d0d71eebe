package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
)

type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.WorkSchedule, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]schedule.WorkSchedule), args.Error(1)
}

func (m *ScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schedule.WorkSchedule), args.Error(1)
}

func (m *ScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	args := m.Called(ctx, ws)
	return args.Get(0).(schedule.WorkSchedule), args.Error(1)
}

func (m *ScheduleRepository) Update(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	args := m.Called(ctx, ws)
	return args.Get(0).(schedule.WorkSchedule), args.Error(1)
}

func (m *ScheduleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
