package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-0001", "emp_42", "A1-B2_C3", "0001"}
	invalid := []string{"", "EMP 0001", "EMP#1", "EMP.0001"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-21"); !ok {
		t.Error("IsValidDate(\"2026-02-21\") = false, want true")
	}
	for _, bad := range []string{"2026-2-21", "21-02-2026", "2026-13-01", "not-a-date", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestValidationErrorsToDetails(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required", Type: "missing"},
		{Field: "full_name", Message: "full_name must not be blank"},
	}

	details := errs.ToDetails()
	if len(details) != 2 {
		t.Fatalf("len(details) = %d, want 2", len(details))
	}
	if details[0].Type != "missing" {
		t.Errorf("details[0].Type = %q, want %q", details[0].Type, "missing")
	}
	// Untyped errors fall back to a generic type
	if details[1].Type != "value_error" {
		t.Errorf("details[1].Type = %q, want %q", details[1].Type, "value_error")
	}
}
