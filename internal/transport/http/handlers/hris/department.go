package hrishandler

import (
	"encoding/json"
	"net/http"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validateDepartment(input hris.Department) *shared.Validator {
	v := shared.NewValidator()
	v.Required("DeptName", input.DeptName, "department name is required")
	v.MaxLen("DeptName", input.DeptName, 100)
	return v
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.Department
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateDepartment(input).Reject(w, requestID) {
		return
	}

	dept, err := h.Store.CreateDepartment(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "department", err)
		return
	}
	api.Success(w, dept, requestID)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	depts, err := h.Store.ListDepartments(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "department", err)
		return
	}
	api.Success(w, depts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "department")
		return
	}
	dept, err := h.Store.GetDepartment(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "department", err)
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "department")
		return
	}
	var input hris.Department
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateDepartment(input).Reject(w, requestID) {
		return
	}

	dept, err := h.Store.UpdateDepartment(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "department", err)
		return
	}
	api.Success(w, dept, requestID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "department")
		return
	}
	if err := h.Store.DeleteDepartment(r.Context(), id); err != nil {
		writeStoreError(w, r, "department", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
