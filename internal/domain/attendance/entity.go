package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined display fields, populated only by listing queries.
	EmployeeName *string
	EmployeeCode *string
}
