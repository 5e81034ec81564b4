package hrishandler

import (
	"encoding/json"
	"net/http"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validateAdmin(input hris.Admin) *shared.Validator {
	v := shared.NewValidator()
	if input.FirstName != nil {
		v.MaxLen("FirstName", *input.FirstName, 50)
	}
	if input.LastName != nil {
		v.MaxLen("LastName", *input.LastName, 50)
	}
	if input.Email != nil {
		v.MaxLen("Email", *input.Email, 50)
		v.Email("Email", *input.Email)
	}
	return v
}

func (h *Handler) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.Admin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateAdmin(input).Reject(w, requestID) {
		return
	}

	admin, err := h.Store.CreateAdmin(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "admin", err)
		return
	}
	api.Success(w, admin, requestID)
}

func (h *Handler) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	admins, err := h.Store.ListAdmins(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "admin", err)
		return
	}
	api.Success(w, admins, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "admin")
		return
	}
	admin, err := h.Store.GetAdmin(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "admin", err)
		return
	}
	api.Success(w, admin, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "admin")
		return
	}
	var input hris.Admin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateAdmin(input).Reject(w, requestID) {
		return
	}

	admin, err := h.Store.UpdateAdmin(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "admin", err)
		return
	}
	api.Success(w, admin, requestID)
}

func (h *Handler) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "admin")
		return
	}
	if err := h.Store.DeleteAdmin(r.Context(), id); err != nil {
		writeStoreError(w, r, "admin", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
