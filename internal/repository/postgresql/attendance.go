package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, record.EmployeeID, record.Date, record.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Date,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE id = $1
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EmployeeID, &found.Date,
		&found.Status, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1 AND date = $2
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&found.ID, &found.EmployeeID, &found.Date,
		&found.Status, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, false)
}

// ListAll implements attendance.AttendanceRepository. Every record is joined
// with its owning employee's display name and code.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
			e.full_name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE ($1::date IS NULL OR a.date >= $1)
			AND ($2::date IS NULL OR a.date <= $2)
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, true)
}

func scanAttendanceRows(rows pgx.Rows, withEmployee bool) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		var err error
		if withEmployee {
			err = rows.Scan(
				&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
				&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeCode,
			)
		} else {
			err = rows.Scan(
				&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
				&rec.CreatedAt, &rec.UpdatedAt,
			)
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository. Nil fields keep their
// stored values.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id int64, date *time.Time, status *attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET date = COALESCE($2, date),
			status = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, date, status, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query, id, date, status).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date,
		&updated.Status, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Summary implements attendance.AttendanceRepository. The LEFT JOIN keeps
// employees with no attendance records in the result with zero totals.
func (r *attendanceRepositoryImpl) Summary(ctx context.Context) ([]attendance.EmployeeAttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_code, e.full_name,
			COUNT(a.id) AS total_days,
			COUNT(a.id) FILTER (WHERE a.status = 'PRESENT') AS total_present,
			COUNT(a.id) FILTER (WHERE a.status = 'ABSENT') AS total_absent
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id
		GROUP BY e.id, e.employee_code, e.full_name
		ORDER BY e.employee_code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]attendance.EmployeeAttendanceSummary, 0)
	for rows.Next() {
		var s attendance.EmployeeAttendanceSummary
		err := rows.Scan(
			&s.EmployeeCode, &s.EmployeeName,
			&s.TotalDays, &s.TotalPresentDays, &s.TotalAbsentDays,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
