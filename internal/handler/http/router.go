package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	User       UserHandler
	Shift      ShiftHandler
	Payroll    PayrollHandler
	Analytics  AnalyticsHandler
	Absentee   AbsenteeHandler
	Dashboard  DashboardHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Get("/auth/me", h.Auth.Me)
		})

		// Attendance
		r.Post("/checkin", h.Attendance.CheckIn)
		r.Post("/checkout", h.Attendance.CheckOut)
		r.Get("/attendance/{worker_id}", h.Attendance.History)
		r.Get("/report", h.Attendance.Report)

		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/", h.Leave.CreateRequest)
			r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListRequests)
			r.With(middleware.RequirePermission(user.PermissionLeaveDecide)).Post("/{id}", h.Leave.DecideRequest)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.ListWorkers)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Post("/", h.User.Create)
				r.Delete("/{id}", h.User.Delete)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.Shift.List)
			r.With(middleware.RequirePermission(user.PermissionShiftManage)).Post("/", h.Shift.Create)
		})

		// Reporting
		r.Get("/salary-summary", h.Payroll.SalarySummary)
		r.Get("/payroll", h.Payroll.Payroll)
		r.Get("/analytics", h.Analytics.GetAnalytics)

		r.With(middleware.RequirePermission(user.PermissionAbsenteeScan)).Post("/absentees/scan", h.Absentee.Scan)
		r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard", h.Dashboard.GetDashboard)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
