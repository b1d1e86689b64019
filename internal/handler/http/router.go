package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/config"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/middleware"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Shift      ShiftHandler
	Holiday    HolidayHandler
	Attendance AttendanceHandler
	Salary     SalaryHandler
	Customer   CustomerHandler
	Job        JobHandler
	Inventory  InventoryHandler
	Finance    FinanceHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "thameem-mobile"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/customers", func(r chi.Router) {
				r.Post("/", h.Customer.Create)
				r.Get("/", h.Customer.List)
				r.Get("/{id}", h.Customer.Get)
				r.Put("/{id}", h.Customer.Update)
				r.Delete("/{id}", h.Customer.Delete)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", h.Job.Create)
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
				r.Put("/{id}", h.Job.Update)
				r.Patch("/{id}/status", h.Job.UpdateStatus)
				r.Post("/{id}/parts", h.Job.AddPart)
			})

			r.Route("/parts", func(r chi.Router) {
				r.Post("/", h.Inventory.Create)
				r.Get("/", h.Inventory.List)
				r.Get("/{id}", h.Inventory.Get)
				r.Put("/{id}", h.Inventory.Update)
				r.Delete("/{id}", h.Inventory.Delete)
				r.Post("/{id}/adjust", h.Inventory.AdjustStock)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Attendance.Correct)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/auth/register", h.Auth.Register)

				r.Route("/workers", func(r chi.Router) {
					r.Post("/", h.Worker.Create)
					r.Get("/", h.Worker.List)
					r.Get("/{id}", h.Worker.Get)
					r.Put("/{id}", h.Worker.Update)
					r.Delete("/{id}", h.Worker.Delete)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.Shift.Create)
					r.Get("/", h.Shift.List)
					r.Get("/{id}", h.Shift.Get)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", h.Holiday.Create)
					r.Get("/", h.Holiday.List)
					r.Get("/{id}", h.Holiday.Get)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})

				r.Route("/salaries", func(r chi.Router) {
					r.Get("/", h.Salary.MonthlyReports)
					r.Get("/{id}", h.Salary.MonthlyReport)
					r.Get("/{id}/payslip", h.Salary.Payslip)
				})

				r.Route("/finance", func(r chi.Router) {
					r.Route("/expenses", func(r chi.Router) {
						r.Post("/", h.Finance.CreateExpense)
						r.Get("/", h.Finance.ListExpenses)
						r.Get("/{id}", h.Finance.GetExpense)
						r.Put("/{id}", h.Finance.UpdateExpense)
						r.Delete("/{id}", h.Finance.DeleteExpense)
					})
					r.Get("/summary", h.Finance.MonthlySummary)
					r.Get("/summary/pdf", h.Finance.MonthlySummaryPDF)
				})
			})
		})
	})
	return r
}
