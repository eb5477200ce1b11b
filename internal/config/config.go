package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Email     EmailConfig
	SMTP      SMTPConfig
	Payroll   PayrollConfig
	Telemetry TelemetryConfig
	Reminders []ReminderSchedule
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	Timezone           string
	CORSAllowedOrigins []string
}

// EmailConfig selects the outbound mail transport.
type EmailConfig struct {
	Provider         string
	From             string
	LeaveNotifyEmail string
	SESRegion        string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type PayrollConfig struct {
	DailyWage          decimal.Decimal
	OvertimeRate       decimal.Decimal
	HourlyRate         decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
}

type TelemetryConfig struct {
	ServiceName  string
	OTLPEndpoint string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	EmailProviderSMTP = "smtp"
	EmailProviderSES  = "ses"
	EmailProviderNone = "none"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", DriverPostgres),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("APP_TIMEZONE", "Asia/Kolkata"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.CORSAllowedOrigins) == 0 {
		config.App.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Email configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	from := getEnv("EMAIL_FROM", "")
	config.Email = EmailConfig{
		Provider:         getEnv("EMAIL_PROVIDER", EmailProviderSMTP),
		From:             from,
		LeaveNotifyEmail: getEnv("LEAVE_NOTIFY_EMAIL", ""),
		SESRegion:        getEnv("SES_REGION", "ap-south-1"),
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     from,
		FromName: getEnv("SMTP_FROM_NAME", "Attendance"),
	}

	// Payroll rates
	if config.Payroll, err = loadPayroll(); err != nil {
		return nil, err
	}

	config.Telemetry = TelemetryConfig{
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "attendance-backend"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	// Reminder schedule
	config.Reminders, err = LoadReminders(getEnv("REMINDERS_FILE", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayroll() (PayrollConfig, error) {
	rates := map[string]string{
		"PAYROLL_DAILY_WAGE":           "300",
		"PAYROLL_OVERTIME_RATE":        "10",
		"PAYROLL_HOURLY_RATE":          "100",
		"PAYROLL_OVERTIME_HOURLY_RATE": "50",
	}
	parsed := make(map[string]decimal.Decimal, len(rates))
	for key, fallback := range rates {
		d, err := decimal.NewFromString(getEnv(key, fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		if d.IsNegative() {
			return PayrollConfig{}, fmt.Errorf("invalid %s: must not be negative", key)
		}
		parsed[key] = d
	}

	return PayrollConfig{
		DailyWage:          parsed["PAYROLL_DAILY_WAGE"],
		OvertimeRate:       parsed["PAYROLL_OVERTIME_RATE"],
		HourlyRate:         parsed["PAYROLL_HOURLY_RATE"],
		OvertimeHourlyRate: parsed["PAYROLL_OVERTIME_HOURLY_RATE"],
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q", DriverPostgres, DriverMemory)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	switch c.Email.Provider {
	case EmailProviderSMTP, EmailProviderNone:
	case EmailProviderSES:
		if c.Email.From == "" {
			return fmt.Errorf("EMAIL_FROM is required for the ses provider")
		}
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be one of: smtp, ses, none")
	}
	return nil
}

// Location returns the operating time zone. All civil dates and times use it.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
