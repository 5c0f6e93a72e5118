package attendance

import (
	"errors"
	"fmt"
)

var ErrAttendanceNotFound = errors.New("attendance record not found")

// AlreadyMarkedError reports a duplicate (employee, date) pair. ExistingStatus
// is empty when the duplicate was detected by the store's unique constraint
// rather than the pre-check, since the aborted transaction cannot be
// re-queried for the conflicting record.
type AlreadyMarkedError struct {
	EmployeeCode   string
	Date           string
	ExistingStatus Status
}

func (e *AlreadyMarkedError) Error() string {
	if e.ExistingStatus != "" {
		return fmt.Sprintf("attendance for employee '%s' on %s is already recorded as '%s'",
			e.EmployeeCode, e.Date, e.ExistingStatus)
	}
	return fmt.Sprintf("attendance for employee '%s' on %s is already recorded", e.EmployeeCode, e.Date)
}
