package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_code, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_code, full_name, email, department, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.FullName,
		&created.Email, &created.Department, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at, updated_at
		FROM employees
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName,
			&emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EmployeeCode, &found.FullName,
		&found.Email, &found.Department, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE employee_code = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&found.ID, &found.EmployeeCode, &found.FullName,
		&found.Email, &found.Department, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// ExistsByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = $1)`,
		employeeCode,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// MaxCodeNumber implements employee.EmployeeRepository. Codes that do not
// match EMP-<digits> are ignored.
func (e *employeeRepositoryImpl) MaxCodeNumber(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COALESCE(MAX((substring(employee_code from '^EMP-([0-9]+)$'))::int), 0)
		FROM employees
	`

	var max int
	if err := q.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// Update implements employee.EmployeeRepository. Absent fields keep their
// stored values.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = COALESCE($2, full_name),
			email = COALESCE($3, email),
			department = COALESCE($4, department),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_code, full_name, email, department, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query, id, req.FullName, req.Email, req.Department).Scan(
		&updated.ID, &updated.EmployeeCode, &updated.FullName,
		&updated.Email, &updated.Department, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
