package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByEmployeeCode(txCtx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to resolve employee: %w", err)
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if existing != nil {
			return &attendance.AlreadyMarkedError{
				EmployeeCode:   emp.EmployeeCode,
				Date:           req.Date,
				ExistingStatus: existing.Status,
			}
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     req.Status,
		})
		if err != nil {
			// Concurrent marks for the same pair race at the store; the
			// loser hits the unique constraint and surfaces the same
			// duplicate condition.
			if isUniquePairViolation(err) {
				return &attendance.AlreadyMarkedError{
					EmployeeCode: emp.EmployeeCode,
					Date:         req.Date,
				}
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeCode string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, startDate, endDate *string) ([]attendance.AttendanceResponse, error) {
	filter, err := parseDateFilter(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.attendanceRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		// Resolved up front so conflict errors can name the employee even
		// after an aborted statement.
		owner, err := s.employeeRepo.GetByID(txCtx, current.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to resolve employee: %w", err)
		}

		var newDate *time.Time
		if req.Date != nil {
			parsed, _ := validator.IsValidDate(*req.Date)
			if !parsed.Equal(current.Date) {
				// Re-check the (employee, date) invariant against the
				// same employee, excluding the record being updated.
				existing, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, current.EmployeeID, parsed)
				if err != nil {
					return fmt.Errorf("failed to check existing attendance: %w", err)
				}
				if existing != nil && existing.ID != current.ID {
					return &attendance.AlreadyMarkedError{
						EmployeeCode:   owner.EmployeeCode,
						Date:           *req.Date,
						ExistingStatus: existing.Status,
					}
				}
				newDate = &parsed
			}
		}

		updated, err = s.attendanceRepo.Update(txCtx, current.ID, newDate, req.Status)
		if err != nil {
			if isUniquePairViolation(err) {
				return &attendance.AlreadyMarkedError{
					EmployeeCode: owner.EmployeeCode,
					Date:         formatDatePtr(req.Date),
				}
			}
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		deleted, err := s.attendanceRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}
		if !deleted {
			return attendance.ErrAttendanceNotFound
		}
		return nil
	})
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context) ([]attendance.EmployeeAttendanceSummary, error) {
	summaries, err := s.attendanceRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance summary: %w", err)
	}
	if summaries == nil {
		// An empty summary must serialize as [].
		summaries = []attendance.EmployeeAttendanceSummary{}
	}
	return summaries, nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses
}

// parseDateFilter validates the optional start/end query values.
func parseDateFilter(startDate, endDate *string) (attendance.ListAttendanceFilter, error) {
	var filter attendance.ListAttendanceFilter
	var errs validator.ValidationErrors

	if startDate != nil && *startDate != "" {
		parsed, ok := validator.IsValidDate(*startDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
				Type:    "date_parsing",
			})
		} else {
			filter.StartDate = &parsed
		}
	}

	if endDate != nil && *endDate != "" {
		parsed, ok := validator.IsValidDate(*endDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
				Type:    "date_parsing",
			})
		} else {
			filter.EndDate = &parsed
		}
	}

	if len(errs) > 0 {
		return attendance.ListAttendanceFilter{}, errs
	}
	return filter, nil
}

func formatDatePtr(date *string) string {
	if date == nil {
		return ""
	}
	return *date
}

func isUniquePairViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
