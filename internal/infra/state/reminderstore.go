package state

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// ReminderStore implements domain.ReminderRepository over a key-value
// backend.
type ReminderStore struct {
	kv domain.KeyValue
}

// NewReminderStore creates a ReminderStore on the given backend.
func NewReminderStore(kv domain.KeyValue) *ReminderStore {
	return &ReminderStore{kv: kv}
}

// Reminder returns the persisted reminder, disabled when absent.
func (s *ReminderStore) Reminder() (*domain.WeightReminder, error) {
	raw, err := s.kv.Get(KeyWeightReminder)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &domain.WeightReminder{}, nil
	}
	var r domain.WeightReminder
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", KeyWeightReminder, err)
	}
	return &r, nil
}

// SaveReminder persists the reminder.
func (s *ReminderStore) SaveReminder(r *domain.WeightReminder) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", KeyWeightReminder, err)
	}
	return s.kv.Set(KeyWeightReminder, raw)
}

// Ensure ReminderStore implements the port.
var _ domain.ReminderRepository = (*ReminderStore)(nil)
