package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// FormatEmployeeCode renders a numeric suffix as an EMP-#### code.
func FormatEmployeeCode(n int) string {
	return fmt.Sprintf("EMP-%04d", n)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		code, err := s.resolveEmployeeCode(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		exists, err := s.employeeRepo.ExistsByEmployeeCode(txCtx, code)
		if err != nil {
			return fmt.Errorf("failed to check employee code: %w", err)
		}
		if exists {
			return &employee.AlreadyExistsError{EmployeeCode: code}
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: code,
			FullName:     strings.TrimSpace(req.FullName),
			Email:        strings.TrimSpace(req.Email),
			Department:   strings.TrimSpace(req.Department),
		})
		if err != nil {
			// The unique indexes are the backstop for concurrent creates
			// that pass the pre-check.
			if conflictErr := mapUniqueViolation(err, code); conflictErr != nil {
				return conflictErr
			}
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// resolveEmployeeCode normalizes a caller-provided code, or derives the next
// sequential EMP-#### code from the highest existing numeric suffix.
func (s *EmployeeServiceImpl) resolveEmployeeCode(ctx context.Context, provided *string) (string, error) {
	if provided != nil {
		return strings.ToUpper(strings.TrimSpace(*provided)), nil
	}

	max, err := s.employeeRepo.MaxCodeNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to derive next employee code: %w", err)
	}
	return FormatEmployeeCode(max + 1), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		updated, err = s.employeeRepo.Update(txCtx, current.ID, req)
		if err != nil {
			if conflictErr := mapUniqueViolation(err, current.EmployeeCode); conflictErr != nil {
				return conflictErr
			}
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. The store's cascade
// rule removes the employee's attendance history.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		deleted, err := s.employeeRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if !deleted {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}

// mapUniqueViolation translates a 23505 on the employees table into the
// matching domain conflict, or returns nil for unrelated errors.
func mapUniqueViolation(err error, code string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "employees_email_key":
		return employee.ErrEmailExists
	default:
		return &employee.AlreadyExistsError{EmployeeCode: code}
	}
}
