package employee

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmployeeDB *database.DB

// employeeTestDB connects once per package run. Tests needing the database
// are skipped when TEST_DATABASE_URL is not set.
func employeeTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testEmployeeDB != nil {
		return testEmployeeDB
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	testEmployeeDB = db
	return testEmployeeDB
}

func truncateEmployeeTables(t *testing.T, ctx context.Context) {
	db := employeeTestDB(t)
	_, err := db.Exec(ctx, "TRUNCATE TABLE attendance, employees RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func newTestEmployeeService(t *testing.T) employee.EmployeeService {
	db := employeeTestDB(t)
	return NewEmployeeService(db, postgresql.NewEmployeeRepository(db))
}

func strPtr(s string) *string { return &s }

func TestFormatEmployeeCode(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "EMP-0001"},
		{42, "EMP-0042"},
		{9999, "EMP-9999"},
		{10000, "EMP-10000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatEmployeeCode(c.n))
	}
}

func TestEmployeeService_Create_GeneratesSequentialCodes(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	first, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-0001", first.EmployeeCode)

	second, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "John Roe",
		Email:      "john@example.com",
		Department: "Sales",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-0002", second.EmployeeCode)
}

func TestEmployeeService_Create_ContinuesAfterExplicitCode(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: strPtr("EMP-0042"),
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	next, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "John Roe",
		Email:      "john@example.com",
		Department: "Sales",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-0043", next.EmployeeCode)
}

func TestEmployeeService_Create_NormalizesCode(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: strPtr("  emp-0007  "),
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-0007", created.EmployeeCode)
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: strPtr("EMP-0001"),
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: strPtr("EMP-0001"),
		FullName:   "John Roe",
		Email:      "john@example.com",
		Department: "Sales",
	})
	var dup *employee.AlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "EMP-0001", dup.EmployeeCode)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "John Roe",
		Email:      "jane@example.com",
		Department: "Sales",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_InvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestEmployeeService(t)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "",
		Email:      "not-an-email",
		Department: "",
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.GreaterOrEqual(t, len(verrs), 3)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
		Department: strPtr("Platform"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Department)
	// Untouched fields keep their values.
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, created.EmployeeCode, updated.EmployeeCode)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	_, err := svc.UpdateEmployee(ctx, 99999, employee.UpdateEmployeeRequest{
		FullName: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	err := svc.DeleteEmployee(ctx, 99999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_RemovesEmployee(t *testing.T) {
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService(t)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
