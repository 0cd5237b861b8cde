package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// ImportEmployees reads a CSV request body.
func (h *employeeHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Import(r.Context(), r.Body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees imported", result)
}

func (h *employeeHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	response.CSVAttachment(w, "employees.csv")
	if err := h.employeeService.Export(r.Context(), w); err != nil {
		response.HandleError(w, err)
	}
}
