package config

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"gopkg.in/yaml.v3"
)

// ReminderSchedule fires the absentee scan for one shift every day at At.
type ReminderSchedule struct {
	ShiftName string `yaml:"shift_name"`
	At        string `yaml:"at"`
}

type remindersFile struct {
	Reminders []ReminderSchedule `yaml:"reminders"`
}

// DefaultReminders is used when REMINDERS_FILE is not set.
var DefaultReminders = []ReminderSchedule{
	{ShiftName: "Shift 1", At: "09:30"},
	{ShiftName: "Shift 2", At: "22:00"},
}

// LoadReminders reads the reminder schedule from a YAML file, or returns the
// defaults when path is empty.
func LoadReminders(path string) ([]ReminderSchedule, error) {
	if path == "" {
		return DefaultReminders, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reminders file: %w", err)
	}

	var file remindersFile
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reminders file: %w", err)
	}

	for i, r := range file.Reminders {
		if r.ShiftName == "" {
			return nil, fmt.Errorf("reminder %d: shift_name is required", i)
		}
		if _, err := clock.ParseTimeOfDay(r.At); err != nil {
			return nil, fmt.Errorf("reminder %d (%s): %w", i, r.ShiftName, err)
		}
	}
	return file.Reminders, nil
}
