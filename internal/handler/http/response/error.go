package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Not-found conditions map
// to 404, duplicate conditions to 400, validation failures to 422 and
// everything else to a generic 500 with no internal detail.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToDetails())
		return
	}

	var codeExists *employee.AlreadyExistsError
	var alreadyMarked *attendance.AlreadyMarkedError

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found", nil)

	case errors.As(err, &codeExists):
		BadRequest(w, "Employee with ID '"+codeExists.EmployeeCode+"' already exists", map[string]string{
			"employee_id": codeExists.EmployeeCode,
		})
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Email already registered", nil)
	case errors.As(err, &alreadyMarked):
		details := map[string]string{
			"employee_id": alreadyMarked.EmployeeCode,
			"date":        alreadyMarked.Date,
		}
		if alreadyMarked.ExistingStatus != "" {
			details["existing_status"] = string(alreadyMarked.ExistingStatus)
		}
		BadRequest(w, capitalize(alreadyMarked.Error()), details)

	default:
		slog.Error("unexpected error", "error", err)
		InternalServerError(w)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
