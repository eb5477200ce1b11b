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

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/telemetry"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	absenteeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/absentee"
	analyticsService "github.com/cmlabs-hris/attendance-backend-go/internal/service/analytics"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/attendance-backend-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/attendance-backend-go/internal/service/payroll"
	shiftService "github.com/cmlabs-hris/attendance-backend-go/internal/service/shift"
	userService "github.com/cmlabs-hris/attendance-backend-go/internal/service/user"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type repositories struct {
	shift      shift.ShiftRepository
	user       user.UserRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	transactor database.Transactor
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("Invalid timezone", "timezone", cfg.App.Timezone, "error", err)
		os.Exit(1)
	}
	clk := clock.NewSystemClock(loc)

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		os.Exit(1)
	}

	repos, err := openRepositories(ctx, cfg, loc)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	transport, err := newEmailTransport(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize email transport", "provider", cfg.Email.Provider, "error", err)
		os.Exit(1)
	}
	notifier, err := email.NewNotifier(email.NewBreakerTransport("email-"+cfg.Email.Provider, transport))
	if err != nil {
		slog.Error("Failed to initialize notifier", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	userSvc := userService.NewUserService(repos.user, repos.shift, repos.transactor, JWTService, clk)
	shiftSvc := shiftService.NewShiftService(repos.shift)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.shift, clk)
	leaveSvc := leaveService.NewLeaveService(repos.leave, repos.user, notifier, cfg.Email.LeaveNotifyEmail, clk)
	payrollSvc := payrollService.NewPayrollService(
		repos.attendance,
		payroll.SalaryRates{DailyWage: cfg.Payroll.DailyWage, OvertimeRate: cfg.Payroll.OvertimeRate},
		payroll.HourlyRates{HourlyRate: cfg.Payroll.HourlyRate, OvertimeHourlyRate: cfg.Payroll.OvertimeHourlyRate},
		clk,
	)
	analyticsSvc := analyticsService.NewAnalyticsService(repos.attendance)
	absenteeSvc := absenteeService.NewAbsenteeService(repos.user, repos.attendance, notifier, clk)
	dashboardSvc := dashboardService.NewDashboardService(repos.user, repos.attendance, repos.leave, clk)

	// Daily absentee reminders
	scheduler := cron.NewScheduler(clk)
	if err := cron.NewReminderJobs(absenteeSvc, cfg.Reminders).RegisterJobs(scheduler); err != nil {
		slog.Error("Failed to register reminder jobs", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
		Absentee:   appHTTP.NewAbsenteeHandler(absenteeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           otelhttp.NewHandler(router, "api"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "addr", srv.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("Failed to flush traces", "error", err)
	}

	slog.Info("Server exited")
}

func openRepositories(ctx context.Context, cfg *config.Config, loc *time.Location) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			shift:      memory.NewShiftRepository(store),
			user:       memory.NewUserRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			leave:      memory.NewLeaveRequestRepository(store),
			transactor: memory.NewTransactor(),
			close:      func() {},
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			shift:      postgresql.NewShiftRepository(db),
			user:       postgresql.NewUserRepository(db, loc),
			attendance: postgresql.NewAttendanceRepository(db, loc),
			leave:      postgresql.NewLeaveRequestRepository(db, loc),
			transactor: postgresql.NewTransactor(db),
			close:      db.Close,
		}, nil
	}
}

func newEmailTransport(ctx context.Context, cfg *config.Config) (email.Transport, error) {
	switch cfg.Email.Provider {
	case config.EmailProviderSES:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Email.SESRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return email.NewSESTransport(ses.NewFromConfig(awsCfg), cfg.Email.From), nil
	case config.EmailProviderSMTP:
		return email.NewSMTPTransport(cfg.SMTP), nil
	default:
		return email.NewLogTransport(), nil
	}
}
