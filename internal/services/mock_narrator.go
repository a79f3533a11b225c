package services

import (
	"context"
	"sync"

	"github.com/emberfell/campaign-engine/pkg/chat"
)

// MockNarrator is a mock implementation of Narrator for testing
type MockNarrator struct {
	mu       sync.Mutex
	response *TurnResponse
	err      error

	// LastMessages records the message sequence of the most recent turn.
	LastMessages []chat.Message
}

// Ensure MockNarrator implements Narrator interface
var _ Narrator = (*MockNarrator)(nil)

// NewMockNarrator creates a mock that narrates a canned line.
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{
		response: &TurnResponse{Narration: "The road stretches on."},
	}
}

// SetResponse configures the next turn's response.
func (m *MockNarrator) SetResponse(resp *TurnResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = resp
	m.err = nil
}

// SetError configures the mock to fail.
func (m *MockNarrator) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockNarrator) Turn(ctx context.Context, messages []chat.Message) (*TurnResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastMessages = messages
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}
