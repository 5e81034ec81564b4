package hrishandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Store           *hris.Store
	DefaultPageSize int
	MaxPageSize     int
}

func NewHandler(store *hris.Store, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{Store: store, DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Post("/", h.handleCreateDepartment)
		r.Get("/", h.handleListDepartments)
		r.Get("/{id}", h.handleGetDepartment)
		r.Put("/{id}", h.handleUpdateDepartment)
		r.Delete("/{id}", h.handleDeleteDepartment)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", h.handleCreateEmployee)
		r.Get("/", h.handleListEmployees)
		r.Get("/{id}", h.handleGetEmployee)
		r.Put("/{id}", h.handleUpdateEmployee)
		r.Delete("/{id}", h.handleDeleteEmployee)
	})
	r.Route("/attendances", func(r chi.Router) {
		r.Post("/", h.handleCreateAttendance)
		r.Get("/", h.handleListAttendances)
		r.Get("/{id}", h.handleGetAttendance)
		r.Put("/{id}", h.handleUpdateAttendance)
		r.Delete("/{id}", h.handleDeleteAttendance)
	})
	r.Route("/payrolls", func(r chi.Router) {
		r.Post("/", h.handleCreatePayroll)
		r.Get("/", h.handleListPayrolls)
		r.Get("/{id}", h.handleGetPayroll)
		r.Get("/{id}/payslip", h.handleGetPayslip)
		r.Put("/{id}", h.handleUpdatePayroll)
		r.Delete("/{id}", h.handleDeletePayroll)
	})
	r.Route("/performance_reviews", func(r chi.Router) {
		r.Post("/", h.handleCreatePerformanceReview)
		r.Get("/", h.handleListPerformanceReviews)
		r.Get("/{id}", h.handleGetPerformanceReview)
		r.Put("/{id}", h.handleUpdatePerformanceReview)
		r.Delete("/{id}", h.handleDeletePerformanceReview)
	})
	r.Route("/admins", func(r chi.Router) {
		r.Post("/", h.handleCreateAdmin)
		r.Get("/", h.handleListAdmins)
		r.Get("/{id}", h.handleGetAdmin)
		r.Put("/{id}", h.handleUpdateAdmin)
		r.Delete("/{id}", h.handleDeleteAdmin)
	})
	r.Route("/user_accounts", func(r chi.Router) {
		r.Post("/", h.handleCreateUserAccount)
		r.Get("/", h.handleListUserAccounts)
		r.Get("/{id}", h.handleGetUserAccount)
		r.Put("/{id}", h.handleUpdateUserAccount)
		r.Delete("/{id}", h.handleDeleteUserAccount)
	})
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// writeStoreError maps domain errors onto the response taxonomy: missing
// identity, constraint violation (already rolled back), or service error.
func writeStoreError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	requestID := middleware.GetRequestID(r.Context())

	if errors.Is(err, hris.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", entity+" not found", requestID)
		return
	}
	var constraintErr *hris.ConstraintError
	if errors.As(err, &constraintErr) {
		api.Fail(w, http.StatusBadRequest, "constraint_violation", constraintErr.Message, requestID)
		return
	}
	slog.Error("store operation failed", "entity", entity, "err", err, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
}

func badID(w http.ResponseWriter, r *http.Request, entity string) {
	api.Fail(w, http.StatusNotFound, "not_found", entity+" not found", middleware.GetRequestID(r.Context()))
}

func invalidPayload(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
}
