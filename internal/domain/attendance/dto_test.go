package attendance

import (
	"errors"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

func TestMarkAttendanceRequestValidate(t *testing.T) {
	cases := []struct {
		name      string
		req       MarkAttendanceRequest
		wantField string
	}{
		{
			name: "valid",
			req:  MarkAttendanceRequest{EmployeeID: "EMP-0001", Date: "2026-02-21", Status: StatusPresent},
		},
		{
			name:      "missing employee",
			req:       MarkAttendanceRequest{Date: "2026-02-21", Status: StatusPresent},
			wantField: "employee_id",
		},
		{
			name:      "bad date",
			req:       MarkAttendanceRequest{EmployeeID: "EMP-0001", Date: "21/02/2026", Status: StatusAbsent},
			wantField: "date",
		},
		{
			name:      "unknown status",
			req:       MarkAttendanceRequest{EmployeeID: "EMP-0001", Date: "2026-02-21", Status: "LATE"},
			wantField: "status",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			found := false
			for _, ve := range errs {
				if ve.Field == c.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no validation error for field %q in %v", c.wantField, errs)
			}
		})
	}
}

func TestUpdateAttendanceRequestValidate(t *testing.T) {
	date := "2026-02-21"
	status := StatusAbsent
	valid := UpdateAttendanceRequest{Date: &date, Status: &status}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	bad := "yesterday"
	if err := (&UpdateAttendanceRequest{Date: &bad}).Validate(); err == nil {
		t.Error("Validate() on bad date = nil, want error")
	}

	badStatus := Status("SICK")
	if err := (&UpdateAttendanceRequest{Status: &badStatus}).Validate(); err == nil {
		t.Error("Validate() on bad status = nil, want error")
	}
}

func TestAlreadyMarkedErrorMessage(t *testing.T) {
	withStatus := &AlreadyMarkedError{
		EmployeeCode:   "EMP-0001",
		Date:           "2026-02-21",
		ExistingStatus: StatusPresent,
	}
	// The conflicting status must be visible in the message.
	if !strings.Contains(withStatus.Error(), "PRESENT") {
		t.Errorf("Error() = %q, want mention of PRESENT", withStatus.Error())
	}

	withoutStatus := &AlreadyMarkedError{EmployeeCode: "EMP-0001", Date: "2026-02-21"}
	if strings.Contains(withoutStatus.Error(), "''") {
		t.Errorf("Error() = %q, should not render an empty status", withoutStatus.Error())
	}
}
