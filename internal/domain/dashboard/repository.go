package dashboard

import "context"

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int, error)

	// CountAttendanceTodayByStatus returns present and absent counts for the
	// store's current date.
	CountAttendanceTodayByStatus(ctx context.Context) (present int, absent int, err error)

	CountAttendanceRecords(ctx context.Context) (int, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
