package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/config"
	appHTTP "github.com/pontoseguro/ponto-backend-go/internal/handler/http"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/cron"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/database"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/sse"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
	attendanceService "github.com/pontoseguro/ponto-backend-go/internal/service/attendance"
	serviceAuth "github.com/pontoseguro/ponto-backend-go/internal/service/auth"
	dashboardService "github.com/pontoseguro/ponto-backend-go/internal/service/dashboard"
	employeeService "github.com/pontoseguro/ponto-backend-go/internal/service/employee"
	reportService "github.com/pontoseguro/ponto-backend-go/internal/service/report"
	scheduleService "github.com/pontoseguro/ponto-backend-go/internal/service/schedule"
	"github.com/pontoseguro/ponto-backend-go/migrations"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})).With(slog.String("app", "ponto-backend"), slog.String("env", cfg.App.Env)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		slog.Info("Database schema up to date")
	}

	loc := cfg.App.Location()
	cutoff := cfg.Attendance.Cutoff()

	// Repositories
	tx := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	// Services
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.IsProduction())
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(tx, employeeRepo, refreshTokenRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, 0)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo, hub, attendanceService.Options{
		Location: loc,
		Cutoff:   cutoff,
	})
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, scheduleSvc, loc, cutoff)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, loc, cutoff)

	// Background jobs
	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(refreshTokenRepo, JWTService).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Env:         cfg.App.Env,
		Version:     version,
		LogLevel:    cfg.App.SlogLevel(),
		CORSOrigins: cfg.App.CORSOrigins,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(JWTService, hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String(), "late_cutoff", cutoff.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
