package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.App.Timezone)
	assert.Equal(t, "300", cfg.Payroll.DailyWage.String())
	assert.Equal(t, "50", cfg.Payroll.OvertimeHourlyRate.String())
	assert.Equal(t, DefaultReminders, cfg.Reminders)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYROLL_DAILY_WAGE", "450.50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "450.5", cfg.Payroll.DailyWage.String())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "APP_PORT", "eighty"},
		{"bad driver", "DB_DRIVER", "mysql"},
		{"bad timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"negative rate", "PAYROLL_OVERTIME_RATE", "-1"},
		{"unknown email provider", "EMAIL_PROVIDER", "pigeon"},
		{"missing reminders file", "REMINDERS_FILE", "/nonexistent/reminders.yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(c.key, c.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_PostgresNeedsPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5432, Name: "attendance", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@db:5432/attendance?sslmode=disable", cfg.DatabaseURL())
}

func TestLoadReminders(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "reminders.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reminders:\n  - shift_name: Night\n    at: \"21:45\"\n"), 0o600))

	got, err := LoadReminders(path)
	require.NoError(t, err)
	assert.Equal(t, []ReminderSchedule{{ShiftName: "Night", At: "21:45"}}, got)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("reminders:\n  - shift_name: Night\n    at: \"25:00\"\n"), 0o600))
	_, err = LoadReminders(bad)
	assert.Error(t, err)

	defaults, err := LoadReminders("")
	require.NoError(t, err)
	assert.Len(t, defaults, 2)
}
