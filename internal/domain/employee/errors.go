package employee

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
)

// AlreadyExistsError reports a duplicate employee code. It carries the
// offending code so the HTTP layer can include it in the error details.
type AlreadyExistsError struct {
	EmployeeCode string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("employee with ID '%s' already exists", e.EmployeeCode)
}
