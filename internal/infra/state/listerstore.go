package state

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// ListerStore implements domain.ListerRepository over a key-value
// backend. The whole lister slice is one blob because the id counter
// and the lists must stay consistent with each other.
type ListerStore struct {
	kv domain.KeyValue
}

// NewListerStore creates a ListerStore on the given backend.
func NewListerStore(kv domain.KeyValue) *ListerStore {
	return &ListerStore{kv: kv}
}

// State returns the persisted lister state, empty when absent.
func (s *ListerStore) State() (*domain.ListerState, error) {
	raw, err := s.kv.Get(KeyLister)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return domain.NewListerState(), nil
	}
	state := domain.NewListerState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("parse %s: %w", KeyLister, err)
	}
	return state, nil
}

// SaveState persists the lister state.
func (s *ListerStore) SaveState(state *domain.ListerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", KeyLister, err)
	}
	return s.kv.Set(KeyLister, raw)
}

// Ensure ListerStore implements the port.
var _ domain.ListerRepository = (*ListerStore)(nil)
