package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]AttendanceResponse, error)
	ListAll(ctx context.Context, startDate, endDate *string) ([]AttendanceResponse, error)
	Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) ([]EmployeeAttendanceSummary, error)
}
