package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
	Type    string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Detail is the wire form of a single validation failure.
type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ToDetails flattens the errors into the list shape used by 422 responses.
func (v ValidationErrors) ToDetails() []Detail {
	details := make([]Detail, 0, len(v))
	for _, err := range v {
		typ := err.Type
		if typ == "" {
			typ = "value_error"
		}
		details = append(details, Detail{
			Field:   err.Field,
			Message: err.Message,
			Type:    typ,
		})
	}
	return details
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Employee codes may only contain letters, digits, hyphens and underscores,
// e.g. EMP-0001.
var employeeCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

func IsValidEmployeeCode(code string) bool {
	return len(code) <= 50 && employeeCodeRegex.MatchString(code)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
