package employee

import "time"

// Employee is the stored record. EmployeeCode is the human-facing identifier
// (e.g. EMP-0001), distinct from the internal numeric ID.
type Employee struct {
	ID           int64
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
