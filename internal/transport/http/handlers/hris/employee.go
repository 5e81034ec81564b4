package hrishandler

import (
	"encoding/json"
	"net/http"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validateEmployee(input hris.Employee) *shared.Validator {
	v := shared.NewValidator()
	v.Required("FirstName", input.FirstName, "first name is required")
	v.MaxLen("FirstName", input.FirstName, 50)
	v.Required("LastName", input.LastName, "last name is required")
	v.MaxLen("LastName", input.LastName, 50)
	if input.DOB != nil && *input.DOB != "" {
		v.Date("DOB", *input.DOB)
	}
	if input.Phone != nil {
		v.MaxLen("Phone", *input.Phone, 15)
	}
	if input.Email != nil {
		v.MaxLen("Email", *input.Email, 100)
		v.Email("Email", *input.Email)
	}
	if !input.Gender.Valid() {
		v.Add("Gender", "must be one of male, female")
	}
	return v
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.Employee
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateEmployee(input).Reject(w, requestID) {
		return
	}

	emp, err := h.Store.CreateEmployee(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "employee", err)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	emps, err := h.Store.ListEmployees(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "employee", err)
		return
	}
	api.Success(w, emps, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "employee")
		return
	}
	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "employee", err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "employee")
		return
	}
	var input hris.Employee
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateEmployee(input).Reject(w, requestID) {
		return
	}

	emp, err := h.Store.UpdateEmployee(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "employee", err)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "employee")
		return
	}
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		writeStoreError(w, r, "employee", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
