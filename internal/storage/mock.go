package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/pkg/campaign"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]*campaign.Record
	pingError error

	// FailReplace forces ReplaceCampaign to report a conflict regardless
	// of versions, for exercising retry paths.
	FailReplace bool
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		campaigns: make(map[uuid.UUID]*campaign.Record),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) CreateCampaign(ctx context.Context, rec *campaign.Record) error {
	if rec == nil {
		return errors.New("campaign cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.campaigns[rec.ID]; exists {
		return fmt.Errorf("campaign already exists: %s", rec.ID)
	}
	rec.Version = 1
	m.campaigns[rec.ID] = rec.Clone()
	return nil
}

func (m *MockStorage) GetCampaign(ctx context.Context, id uuid.UUID) (*campaign.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (m *MockStorage) ReplaceCampaign(ctx context.Context, rec *campaign.Record) error {
	if rec == nil {
		return errors.New("campaign cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReplace {
		return ErrVersionConflict
	}
	current, ok := m.campaigns[rec.ID]
	if !ok {
		return fmt.Errorf("campaign not found: %s", rec.ID)
	}
	if current.Version != rec.Version {
		return ErrVersionConflict
	}
	next := rec.Clone()
	next.Version = rec.Version + 1
	m.campaigns[rec.ID] = next
	return nil
}

func (m *MockStorage) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.campaigns, id)
	return nil
}

func (m *MockStorage) ListCampaigns(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(m.campaigns))
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return ids, nil
}
