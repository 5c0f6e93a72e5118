package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	healthHandler HealthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.MarkAttendance)
			r.Get("/", attendanceHandler.ListAttendance)
			r.Get("/summary/by-employee", attendanceHandler.GetSummary)
			// {id} is the employee code on GET, the record id on PUT/DELETE
			r.Get("/{id}", attendanceHandler.GetEmployeeAttendance)
			r.Put("/{id}", attendanceHandler.UpdateAttendance)
			r.Delete("/{id}", attendanceHandler.DeleteAttendance)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.GetStats)
		})
	})

	return r
}
