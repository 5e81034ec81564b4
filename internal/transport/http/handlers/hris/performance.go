package hrishandler

import (
	"encoding/json"
	"net/http"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validatePerformanceReview(input hris.PerformanceReview) *shared.Validator {
	v := shared.NewValidator()
	if input.EmployeeID <= 0 {
		v.Add("EmployeeID", "employee reference is required")
	}
	v.Required("ReviewDate", input.ReviewDate, "review date is required")
	if input.ReviewDate != "" {
		v.Date("ReviewDate", input.ReviewDate)
	}
	// The 1..10 score bound lives in the database check constraint; an
	// out-of-range value surfaces as a constraint violation, not a
	// validation issue.
	if input.WorkingHours < 0 {
		v.Add("WorkingHours", "must not be negative")
	}
	return v
}

func (h *Handler) handleCreatePerformanceReview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.PerformanceReview
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validatePerformanceReview(input).Reject(w, requestID) {
		return
	}

	review, err := h.Store.CreatePerformanceReview(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "performance review", err)
		return
	}
	api.Success(w, review, requestID)
}

func (h *Handler) handleListPerformanceReviews(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	reviews, err := h.Store.ListPerformanceReviews(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "performance review", err)
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPerformanceReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "performance review")
		return
	}
	review, err := h.Store.GetPerformanceReview(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "performance review", err)
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePerformanceReview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "performance review")
		return
	}
	var input hris.PerformanceReview
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validatePerformanceReview(input).Reject(w, requestID) {
		return
	}

	review, err := h.Store.UpdatePerformanceReview(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "performance review", err)
		return
	}
	api.Success(w, review, requestID)
}

func (h *Handler) handleDeletePerformanceReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "performance review")
		return
	}
	if err := h.Store.DeletePerformanceReview(r.Context(), id); err != nil {
		writeStoreError(w, r, "performance review", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}
