package response

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// ErrorResponse is the uniform envelope for every error. Details is null, a
// string, a list or an object depending on the failure.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Success: false,
			Message: "Failed to encode response",
		})
	}
}

// Success responses carry the bare resource representation.
func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details interface{}) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: message,
		Details: details,
	})
}

func NotFound(w http.ResponseWriter, message string, details interface{}) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Success: false,
		Message: message,
		Details: details,
	})
}

func ValidationError(w http.ResponseWriter, details []validator.Detail) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Message: "Request validation failed",
		Details: details,
	})
}

func InternalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: "An unexpected internal server error occurred",
	})
}
