package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/config"
	appHTTP "github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/cron"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/email"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/jwt"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/whatsapp"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/repository/postgresql"
	attendanceService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/attendance"
	serviceAuth "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/auth"
	customerService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/customer"
	financeService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/finance"
	holidayService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/holiday"
	inventoryService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/inventory"
	jobService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/notification"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/report"
	salaryService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/salary"
	shiftService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/shift"
	workerService "github.com/techvaseegrah/thameem-mobile-backend-go/internal/service/worker"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	partRepo := postgresql.NewPartRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService := email.NewService(cfg.SMTP)

	// WhatsApp is optional; the shop runs fine without notifications.
	var sender notification.Sender
	var waClient *whatsapp.Client
	if cfg.WhatsApp.Enabled {
		waClient, err = whatsapp.Connect(cfg.WhatsApp.SessionDBPath)
		if err != nil {
			slog.Warn("whatsapp connection failed, notifications disabled", "error", err)
		} else {
			sender = waClient
			defer waClient.Disconnect()
		}
	}
	notifier := notification.NewNotificationService(sender, cfg.WhatsApp.OwnerPhone, cfg.App.ShopName)

	pdfService := report.NewPDFService(cfg.App.ShopName)

	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService, emailService, cfg.App.FrontendURL)
	workerSvc := workerService.NewWorkerService(db, workerRepo, shiftRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, workerRepo)
	salarySvc := salaryService.NewSalaryService(workerRepo, shiftRepo, holidayRepo, attendanceRepo)
	customerSvc := customerService.NewCustomerService(db, customerRepo)
	jobSvc := jobService.NewJobService(db, jobRepo, customerRepo, partRepo, notifier)
	inventorySvc := inventoryService.NewInventoryService(db, partRepo)
	financeSvc := financeService.NewFinanceService(db, expenseRepo, jobRepo, salarySvc)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc, pdfService),
		Customer:   appHTTP.NewCustomerHandler(customerSvc),
		Job:        appHTTP.NewJobHandler(jobSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Finance:    appHTTP.NewFinanceHandler(financeSvc, pdfService),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddDailyJob("daily-summary", cfg.WhatsApp.DailySummaryAt, func(ctx context.Context) error {
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		delivered, err := jobRepo.ListDeliveredBetween(ctx, start, start.AddDate(0, 0, 1))
		if err != nil {
			return err
		}
		notifier.SendDailySummary(ctx, start, delivered)
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
