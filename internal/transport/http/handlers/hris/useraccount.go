package hrishandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hris/internal/domain/auth"
	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validateUserAccount(input hris.UserAccount) *shared.Validator {
	v := shared.NewValidator()
	if input.AdminID <= 0 {
		v.Add("adminID", "admin reference is required")
	}
	v.Required("Username", input.Username, "username is required")
	v.MaxLen("Username", input.Username, 50)
	v.Required("password", input.Password, "password is required")
	if len(input.Password) > 0 && len(input.Password) < 4 {
		v.Add("password", "must be at least 4 characters")
	}
	return v
}

func (h *Handler) handleCreateUserAccount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.UserAccount
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateUserAccount(input).Reject(w, requestID) {
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		slog.Error("password hash failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
		return
	}

	account, err := h.Store.CreateUserAccount(r.Context(), input, hash)
	if err != nil {
		writeStoreError(w, r, "user account", err)
		return
	}
	api.Success(w, account, requestID)
}

func (h *Handler) handleListUserAccounts(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	accounts, err := h.Store.ListUserAccounts(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "user account", err)
		return
	}
	api.Success(w, accounts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetUserAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "user account")
		return
	}
	account, err := h.Store.GetUserAccount(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "user account", err)
		return
	}
	api.Success(w, account, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateUserAccount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "user account")
		return
	}
	var input hris.UserAccount
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validateUserAccount(input).Reject(w, requestID) {
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		slog.Error("password hash failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
		return
	}

	account, err := h.Store.UpdateUserAccount(r.Context(), id, input, hash)
	if err != nil {
		writeStoreError(w, r, "user account", err)
		return
	}
	api.Success(w, account, requestID)
}

func (h *Handler) handleDeleteUserAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "user account")
		return
	}
	if err := h.Store.DeleteUserAccount(r.Context(), id); err != nil {
		writeStoreError(w, r, "user account", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
