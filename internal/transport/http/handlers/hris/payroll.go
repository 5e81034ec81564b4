package hrishandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"hris/internal/domain/hris"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func validatePayroll(input hris.Payroll) *shared.Validator {
	v := shared.NewValidator()
	if input.EmployeeID <= 0 {
		v.Add("EmployeeID", "employee reference is required")
	}
	if input.Salary < 0 {
		v.Add("Salary", "must not be negative")
	}
	if input.Bonus < 0 {
		v.Add("Bonus", "must not be negative")
	}
	if input.Deduction < 0 {
		v.Add("Deduction", "must not be negative")
	}
	v.Required("PayDate", input.PayDate, "pay date is required")
	if input.PayDate != "" {
		v.Date("PayDate", input.PayDate)
	}
	return v
}

func (h *Handler) handleCreatePayroll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input hris.Payroll
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validatePayroll(input).Reject(w, requestID) {
		return
	}

	pay, err := h.Store.CreatePayroll(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}
	api.Success(w, pay, requestID)
}

func (h *Handler) handleListPayrolls(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	pays, err := h.Store.ListPayrolls(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}
	api.Success(w, pays, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "payroll")
		return
	}
	pay, err := h.Store.GetPayroll(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}
	api.Success(w, pay, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePayroll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "payroll")
		return
	}
	var input hris.Payroll
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		invalidPayload(w, r)
		return
	}
	if validatePayroll(input).Reject(w, requestID) {
		return
	}

	pay, err := h.Store.UpdatePayroll(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}
	api.Success(w, pay, requestID)
}

func (h *Handler) handleDeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		badID(w, r, "payroll")
		return
	}
	if err := h.Store.DeletePayroll(r.Context(), id); err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, middleware.GetRequestID(r.Context()))
}

// handleGetPayslip renders a one-page PDF for the payroll row joined with
// its employee. Gross is salary plus bonus, net subtracts the deduction.
func (h *Handler) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(r)
	if !ok {
		badID(w, r, "payroll")
		return
	}
	data, err := h.Store.PayslipData(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "payroll", err)
		return
	}

	gross := data.Salary + data.Bonus
	net := gross - data.Deduction

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Payslip")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", data.FirstName, data.LastName))
	pdf.Ln(8)
	if data.Email != nil {
		pdf.Cell(0, 8, "Email: "+*data.Email)
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, "Pay date: "+data.PayDate)
	pdf.Ln(14)

	line := func(label string, amount float64) {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
	}
	line("Base salary", data.Salary)
	line("Bonus", data.Bonus)
	line("Gross", gross)
	line("Deduction", -data.Deduction)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 10, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("%.2f", net), "T", 1, "R", false, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=payslip-%d.pdf", id))
	if err := pdf.Output(w); err != nil {
		slog.Error("payslip render failed", "payrollId", id, "err", err, "requestId", requestID)
	}
}
