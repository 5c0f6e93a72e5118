package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	// EmployeeID is the human-facing code. Auto-generated when omitted.
	EmployeeID *string `json:"employee_id,omitempty"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil {
		code := strings.TrimSpace(*r.EmployeeID)
		if code == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id must not be blank when provided",
				Type:    "string_too_short",
			})
		} else if !validator.IsValidEmployeeCode(code) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id may only contain letters, digits, hyphens, or underscores",
				Type:    "string_pattern_mismatch",
			})
		}
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
			Type:    "missing",
		})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
			Type:    "string_too_long",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
			Type:    "missing",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
			Type:    "value_error",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
			Type:    "missing",
		})
	} else if len(r.Department) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not exceed 100 characters",
			Type:    "string_too_long",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be blank",
			Type:    "string_too_short",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
			Type:    "value_error",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be blank",
			Type:    "string_too_short",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           int64     `json:"id"`
	EmployeeCode string    `json:"employee_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse maps the stored record to its wire representation.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Department:   e.Department,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
