package main

import (
	"fmt"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/config"
	appHTTP "github.com/gajihub/payroll-backend-go/internal/handler/http"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/pkg/jwt"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/gajihub/payroll-backend-go/internal/service/adjustment"
	payrollService "github.com/gajihub/payroll-backend-go/internal/service/payroll"
	periodService "github.com/gajihub/payroll-backend-go/internal/service/period"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.App.BuildTimeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	bracketRepo := postgresql.NewBracketRepository(db)
	manualItemRepo := postgresql.NewManualItemRepository(db)
	payrollItemRepo := postgresql.NewPayrollItemRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	periodSvc := periodService.NewPeriodService(db, periodRepo, cfg.App.StorageTimeout)
	adjustmentSvc := adjustmentService.NewManualItemService(db, manualItemRepo, periodRepo, employeeRepo, cfg.App.StorageTimeout)
	bracketSvc := statutoryService.NewBracketService(bracketRepo, cfg.App.StorageTimeout)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollItemRepo,
		periodRepo,
		employeeRepo,
		manualItemRepo,
		bracketRepo,
		cfg.Statutory,
		cfg.App.BuildTimeout,
		cfg.App.StorageTimeout,
	)

	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	statutoryHandler := appHTTP.NewStatutoryHandler(bracketSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		periodHandler,
		payrollHandler,
		adjustmentHandler,
		statutoryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
