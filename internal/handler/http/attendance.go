package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	AddRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	GetTotals(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) AddRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := req.ToRecord()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.attendanceService.AddRecord(r.Context(), record); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", attendance.NewRecordResponse(record, h.attendanceService.IsHoliday(record.WorkDate)))
}

// ListRecords returns every record, optionally filtered by ?employee_id=.
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	result := []attendance.RecordResponse{}
	for _, rec := range h.attendanceService.Records() {
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		result = append(result, attendance.NewRecordResponse(rec, h.attendanceService.IsHoliday(rec.WorkDate)))
	}

	response.Success(w, result)
}

// Import reads a CSV request body.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Import(r.Context(), r.Body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance imported", result)
}

type totalsResponse struct {
	attendance.Totals
	Period   payroll.Period             `json:"period"`
	DayTypes map[attendance.DayType]int `json:"day_types"`
}

func (h *attendanceHandlerImpl) GetTotals(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totalsResponse{
		Totals:   h.attendanceService.Totals(employeeID, period.Month, period.Year),
		Period:   period,
		DayTypes: h.attendanceService.CountDayTypes(employeeID, period.Month, period.Year),
	})
}

func periodFromQuery(r *http.Request) (payroll.Period, error) {
	q := r.URL.Query()
	return payroll.PeriodQuery{Month: q.Get("month"), Year: q.Get("year")}.Parse()
}
