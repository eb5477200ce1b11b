package cron

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/absentee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type ReminderJobs struct {
	absenteeSvc absentee.AbsenteeService
	schedules   []config.ReminderSchedule
}

func NewReminderJobs(absenteeSvc absentee.AbsenteeService, schedules []config.ReminderSchedule) *ReminderJobs {
	return &ReminderJobs{
		absenteeSvc: absenteeSvc,
		schedules:   schedules,
	}
}

// RegisterJobs adds one daily absentee scan per configured shift.
func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler) error {
	for _, sched := range j.schedules {
		at, err := clock.ParseTimeOfDay(sched.At)
		if err != nil {
			return fmt.Errorf("invalid reminder time for %s: %w", sched.ShiftName, err)
		}
		scheduler.AddDailyJob("shift_reminder:"+sched.ShiftName, at, j.scanShift(sched.ShiftName))
	}
	return nil
}

func (j *ReminderJobs) scanShift(shiftName string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if _, err := j.absenteeSvc.ScanToday(ctx, shiftName); err != nil {
			return fmt.Errorf("absentee scan for %s: %w", shiftName, err)
		}
		return nil
	}
}
