package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// SetReminderInput configures the daily weigh-in reminder.
type SetReminderInput struct {
	Enabled bool
	Hour    int
	Minute  int
}

// SetReminder is the use case for configuring the weigh-in reminder.
type SetReminder struct {
	repo   domain.ReminderRepository
	logger domain.Logger
}

// NewSetReminder creates a new SetReminder use case.
func NewSetReminder(repo domain.ReminderRepository, logger domain.Logger) *SetReminder {
	return &SetReminder{repo: repo, logger: logger}
}

// Execute persists the reminder schedule.
func (uc *SetReminder) Execute(_ context.Context, in SetReminderInput) error {
	if in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 {
		return fmt.Errorf("invalid reminder time %02d:%02d", in.Hour, in.Minute)
	}
	r := &domain.WeightReminder{Enabled: in.Enabled, Hour: in.Hour, Minute: in.Minute}
	if err := uc.repo.SaveReminder(r); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("reminder", fmt.Sprintf("weigh-in reminder enabled=%t at %02d:%02d", in.Enabled, in.Hour, in.Minute))
	}
	return nil
}

// FireReminder is the use case for delivering the weigh-in
// notification when the reminder is enabled and the notifier is
// available.
type FireReminder struct {
	repo     domain.ReminderRepository
	notifier domain.Notifier
	logger   domain.Logger
}

// NewFireReminder creates a new FireReminder use case.
func NewFireReminder(repo domain.ReminderRepository, notifier domain.Notifier, logger domain.Logger) *FireReminder {
	return &FireReminder{repo: repo, notifier: notifier, logger: logger}
}

// Execute sends the notification. It reports whether one was sent.
func (uc *FireReminder) Execute(_ context.Context) (bool, error) {
	r, err := uc.repo.Reminder()
	if err != nil {
		return false, fmt.Errorf("load reminder: %w", err)
	}
	if !r.Enabled {
		return false, nil
	}
	if uc.notifier == nil || !uc.notifier.Available() {
		if uc.logger != nil {
			uc.logger.Warn("reminder", "notifier unavailable, skipping weigh-in reminder")
		}
		return false, nil
	}
	if err := uc.notifier.Notify("Daily weigh-in", "Time to record today's weight."); err != nil {
		return false, fmt.Errorf("notify: %w", err)
	}
	return true, nil
}
