package attendance

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	// EmployeeID is the employee code string (e.g. EMP-0001), not the
	// internal numeric id.
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
			Type:    "missing",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
			Type:    "missing",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
			Type:    "date_parsing",
		})
	}

	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PRESENT or ABSENT",
			Type:    "enum",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	Date   *string `json:"date,omitempty"`
	Status *Status `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
				Type:    "date_parsing",
			})
		}
	}

	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PRESENT or ABSENT",
			Type:    "enum",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListAttendanceFilter narrows the full listing to an inclusive date range.
type ListAttendanceFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type AttendanceResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format("2006-01-02"),
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		EmployeeName: a.EmployeeName,
		EmployeeCode: a.EmployeeCode,
	}
}

type EmployeeAttendanceSummary struct {
	EmployeeCode     string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	TotalPresentDays int    `json:"total_present_days"`
	TotalAbsentDays  int    `json:"total_absent_days"`
	TotalDays        int    `json:"total_days"`
}
