package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hrms-lite/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	healthHandler := appHTTP.NewHealthHandler(db, cfg.App.Version)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		healthHandler,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
