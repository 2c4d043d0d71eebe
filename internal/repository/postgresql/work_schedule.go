package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/database"
)

// TIME columns are read back as HH:MM text.
const scheduleColumns = `id, employee_id, weekday,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	to_char(break_start, 'HH24:MI'), to_char(break_end, 'HH24:MI'),
	created_at, updated_at`

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

func scanSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.EmployeeID, &ws.Weekday, &ws.StartTime, &ws.EndTime,
		&ws.BreakStart, &ws.BreakEnd, &ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

// ListByEmployee implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM work_schedules
		WHERE employee_id = $1
		ORDER BY CASE weekday
			WHEN 'monday' THEN 1 WHEN 'tuesday' THEN 2 WHEN 'wednesday' THEN 3
			WHEN 'thursday' THEN 4 WHEN 'friday' THEN 5 WHEN 'saturday' THEN 6
			ELSE 7 END, start_time
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]schedule.WorkSchedule, 0)
	for rows.Next() {
		ws, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	ws, err := scanSchedule(q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM work_schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return ws, nil
}

// Create implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to generate id: %w", err)
	}

	query := `
		INSERT INTO work_schedules (id, employee_id, weekday, start_time, end_time, break_start, break_end)
		VALUES ($1, $2, $3, $4::time, $5::time, $6::time, $7::time)
		RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query,
		id.String(), ws.EmployeeID, ws.Weekday, ws.StartTime, ws.EndTime, ws.BreakStart, ws.BreakEnd,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.WorkSchedule{}, schedule.ErrWeekdayTaken
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}
	return created, nil
}

// Update implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) Update(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET weekday = $1, start_time = $2::time, end_time = $3::time,
			break_start = $4::time, break_end = $5::time, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + scheduleColumns

	updated, err := scanSchedule(q.QueryRow(ctx, query,
		ws.Weekday, ws.StartTime, ws.EndTime, ws.BreakStart, ws.BreakEnd, ws.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		if isUniqueViolation(err) {
			return schedule.WorkSchedule{}, schedule.ErrWeekdayTaken
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to update work schedule: %w", err)
	}
	return updated, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
