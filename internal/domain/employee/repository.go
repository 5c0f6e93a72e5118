package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error)

	// MaxCodeNumber returns the highest numeric suffix among codes of the
	// form EMP-<number>, or 0 when no such code exists.
	MaxCodeNumber(ctx context.Context) (int, error)

	// Update applies only the fields present in req and returns the
	// updated record.
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes the employee and, through the store's cascade rule,
	// all of its attendance records. Returns false when id is unknown.
	Delete(ctx context.Context, id int64) (bool, error)
}
