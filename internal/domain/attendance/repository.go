package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)

	GetByID(ctx context.Context, id int64) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the pair.
	// Used to produce a friendly duplicate error before the unique
	// constraint fires.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// ListByEmployee returns the employee's records, date descending.
	ListByEmployee(ctx context.Context, employeeID int64) ([]Attendance, error)

	// ListAll returns all records joined with the owning employee's name
	// and code, date descending, optionally filtered by filter.
	ListAll(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)

	// Update applies only the non-nil fields and returns the updated record.
	Update(ctx context.Context, id int64, date *time.Time, status *Status) (Attendance, error)

	// Delete returns false when id is unknown.
	Delete(ctx context.Context, id int64) (bool, error)

	// Summary aggregates per-employee totals over all attendance records,
	// including employees with none, ordered by employee code.
	Summary(ctx context.Context) ([]EmployeeAttendanceSummary, error)
}
