package http

import (
	"bytes"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	RunPayrollForAll(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ExportRegister(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) RunPayrollForAll(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.RunPayrollForAll(r.Context(), period.Month, period.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.NewBatchResponse(result))
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Payslip(r.Context(), employeeID, period.Month, period.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportRegister streams the register CSV. Advances are given as repeated
// ?advance=employee_id:amount parameters.
func (h *payrollHandlerImpl) ExportRegister(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	advances, err := payroll.ParseAdvances(r.URL.Query()["advance"])
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Run first so a failure can still be reported as JSON.
	req := payroll.RegisterRequest{Period: period, Advances: advances}
	var buf bytes.Buffer
	if err := h.payrollService.ExportRegister(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVAttachment(w, period.RegisterFilename())
	_, _ = buf.WriteTo(w)
}
