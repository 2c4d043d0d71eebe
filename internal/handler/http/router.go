package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
)

type RouterOptions struct {
	Env         string
	Version     string
	LogLevel    slog.Level
	CORSOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Events     EventsHandler
}

func NewRouter(opts RouterOptions, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// EventSource cannot send headers, the stream checks its own token
		r.Get("/events", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Post("/{action}", h.Attendance.Record)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Employee.GetEmployee)
						r.Put("/", h.Employee.UpdateEmployee)
						r.Patch("/active", h.Employee.SetActive)
						r.Get("/schedules", h.Schedule.ListWorkSchedules)
						r.Post("/schedules", h.Schedule.CreateWorkSchedule)
					})
				})

				r.Route("/schedules/{id}", func(r chi.Router) {
					r.Put("/", h.Schedule.UpdateWorkSchedule)
					r.Delete("/", h.Schedule.DeleteWorkSchedule)
				})

				r.Get("/records", h.Report.Monthly)
				r.Get("/records/export", h.Report.Export)
				r.Get("/dashboard", h.Dashboard.Overview)
				r.Post("/events/token", h.Events.Token)
			})
		})
	})
	return r
}
