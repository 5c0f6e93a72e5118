package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountAttendanceTodayByStatus returns present and absent counts for the
// current date in a single query. The day boundary is the database's
// CURRENT_DATE so it agrees with the stored DATE values.
func (r *dashboardRepositoryImpl) CountAttendanceTodayByStatus(ctx context.Context) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT') AS present,
			COUNT(*) FILTER (WHERE status = 'ABSENT') AS absent
		FROM attendance
		WHERE date = CURRENT_DATE
	`

	var present, absent int
	if err := q.QueryRow(ctx, query).Scan(&present, &absent); err != nil {
		return 0, 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	return present, absent, nil
}

// CountAttendanceRecords implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendanceRecords(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}
