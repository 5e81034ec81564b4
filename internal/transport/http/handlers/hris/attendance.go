package hrishandler

import (
	"encoding/json"
	"net/http"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validateAttendance(input hris.Attendance) *shared.Validator {
	v := shared.NewValidator()
	if input.EmployeeID <= 0 {
		v.Add("EmployeeID", "employee reference is required")
	}
	v.Required("Date", input.Date, "attendance date is required")
	if input.Date != "" {
		v.Date("Date", input.Date)
	}
	v.Clock("timeIn", input.TimeIn)
	v.Clock("timeOut", input.TimeOut)
	return v
}

func (h *Handler) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.Attendance
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateAttendance(input).Reject(w, requestID) {
		return
	}

	att, err := h.Store.CreateAttendance(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "attendance", err)
		return
	}
	api.Success(w, att, requestID)
}

func (h *Handler) handleListAttendances(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	atts, err := h.Store.ListAttendances(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "attendance", err)
		return
	}
	api.Success(w, atts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "attendance")
		return
	}
	att, err := h.Store.GetAttendance(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "attendance", err)
		return
	}
	api.Success(w, att, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "attendance")
		return
	}
	var input hris.Attendance
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateAttendance(input).Reject(w, requestID) {
		return
	}

	att, err := h.Store.UpdateAttendance(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "attendance", err)
		return
	}
	api.Success(w, att, requestID)
}

func (h *Handler) handleDeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "attendance")
		return
	}
	if err := h.Store.DeleteAttendance(r.Context(), id); err != nil {
		writeStoreError(w, r, "attendance", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
