package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/attendance"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/database"
)

const (
	attendanceColumns = `a.id, a.employee_id, a.date, a.check_in, a.break_start, a.break_end, a.check_out, a.created_at, a.updated_at`
	sqlDateLayout     = "2006-01-02"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanDay(row pgx.Row, withName bool) (attendance.Day, error) {
	var d attendance.Day
	dest := []interface{}{
		&d.ID, &d.EmployeeID, &d.Date, &d.CheckIn, &d.BreakStart, &d.BreakEnd, &d.CheckOut,
		&d.CreatedAt, &d.UpdatedAt,
	}
	if withName {
		dest = append(dest, &d.EmployeeName)
	}
	err := row.Scan(dest...)
	return d, err
}

// actionColumn maps an action to its column. The result is safe to interpolate.
func actionColumn(action attendance.Action) (string, error) {
	for _, a := range attendance.Actions {
		if a == action {
			return string(a), nil
		}
	}
	return "", attendance.ErrInvalidAction
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.employee_id = $1 AND a.date = $2::date
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	d, err := scanDay(q.QueryRow(ctx, query, employeeID, date.Format(sqlDateLayout)), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrDayNotFound
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}
	return &d, nil
}

// UpsertField implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertField(ctx context.Context, employeeID string, date time.Time, action attendance.Action, ts time.Time) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	col, err := actionColumn(action)
	if err != nil {
		return attendance.Day{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to generate id: %w", err)
	}

	// A recorded column is never overwritten.
	query := fmt.Sprintf(`
		INSERT INTO attendance_days AS a (id, employee_id, date, %[1]s)
		VALUES ($1, $2, $3::date, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET %[1]s = COALESCE(a.%[1]s, EXCLUDED.%[1]s),
			updated_at = CASE WHEN a.%[1]s IS NULL THEN NOW() ELSE a.updated_at END
		RETURNING %[2]s
	`, col, attendanceColumns)

	d, err := scanDay(q.QueryRow(ctx, query, id.String(), employeeID, date.Format(sqlDateLayout), ts), false)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to record %s: %w", action, err)
	}
	return d, nil
}

// FindRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.date >= $1::date", "a.date < $2::date"}
	args := []interface{}{filter.From.Format(sqlDateLayout), filter.To.Format(sqlDateLayout)}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}

	query := `
		SELECT ` + attendanceColumns + `, e.name
		FROM attendance_days a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.date ASC, e.name ASC
	`

	return a.queryDays(ctx, q, query, args...)
}

// Recent implements attendance.AttendanceRepository.
func (a *attendanceRepository) Recent(ctx context.Context, employeeID string, limit int) ([]attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, e.name
		FROM attendance_days a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	return a.queryDays(ctx, q, query, employeeID, limit)
}

func (a *attendanceRepository) queryDays(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Day, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance days: %w", err)
	}
	defer rows.Close()

	days := make([]attendance.Day, 0)
	for rows.Next() {
		d, err := scanDay(rows, true)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
