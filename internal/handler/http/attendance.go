package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// MarkAttendance handles POST /attendance
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, malformedBodyDetails(err))
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// ListAttendance handles GET /attendance?start_date=&end_date=
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	var startDate, endDate *string
	if v := r.URL.Query().Get("start_date"); v != "" {
		startDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		endDate = &v
	}

	results, err := h.attendanceService.ListAll(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, results)
}

// GetEmployeeAttendance handles GET /attendance/{id}, where {id} is the
// employee code (e.g. EMP-0001), not the record id.
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "id")

	results, err := h.attendanceService.ListByEmployee(r.Context(), employeeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, results)
}

// UpdateAttendance handles PUT /attendance/{id}
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, malformedBodyDetails(err))
		return
	}

	result, err := h.attendanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// DeleteAttendance handles DELETE /attendance/{id}
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// GetSummary handles GET /attendance/summary/by-employee
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, results)
}
