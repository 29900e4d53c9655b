package http

import (
	"log/slog"
	"os"

	"github.com/gajihub/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gajihub/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	env string,
	periodHandler PeriodHandler,
	payrollHandler PayrollHandler,
	adjustmentHandler AdjustmentHandler,
	statutoryHandler StatutoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gajihub-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/periods", func(r chi.Router) {
				r.Get("/", periodHandler.List)

				r.Route("/{year}/{month}", func(r chi.Router) {
					r.Get("/", periodHandler.Get)
					r.Get("/summary", payrollHandler.Summary)
					r.Get("/payslips/{employeeID}", payrollHandler.GetPayslip)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/lock", periodHandler.Lock)
						r.Post("/unlock", periodHandler.Unlock)
						r.Post("/build", payrollHandler.Build)
					})
				})
			})

			r.Route("/employees/{employeeID}/adjustments", func(r chi.Router) {
				r.Get("/", adjustmentHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", adjustmentHandler.Add)
					r.Put("/", adjustmentHandler.ReplaceByCode)
					r.Delete("/{itemID}", adjustmentHandler.Delete)
				})
			})

			r.Get("/brackets/{scheme}", statutoryHandler.ListBrackets)
		})
	})
	return r
}
