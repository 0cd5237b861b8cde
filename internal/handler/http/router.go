package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	welfareHandler WelfareHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Post("/import", employeeHandler.ImportEmployees)
			r.Get("/export", employeeHandler.ExportEmployees)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Patch("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListRecords)
			r.Post("/", attendanceHandler.AddRecord)
			r.Post("/import", attendanceHandler.Import)
			r.Get("/{employeeID}/totals", attendanceHandler.GetTotals)
		})

		r.Get("/welfare", welfareHandler.ListProviders)

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", payrollHandler.RunPayrollForAll)
			r.Get("/export", payrollHandler.ExportRegister)
			r.Get("/{employeeID}", payrollHandler.GetPayslip)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
