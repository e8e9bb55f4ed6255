package stubs

import (
	"context"
	"sync"

	"strive/internal/models"
)

// MockDB is an in-memory implementation of the Storage interface for testing
// and for running without a database backend
type MockDB struct {
	mu       sync.RWMutex
	accounts []models.Account
}

// NewMockDB creates a new mock account store
func NewMockDB() *MockDB {
	return &MockDB{
		accounts: make([]models.Account, 0),
	}
}

// Initialize does nothing for the mock store; it starts empty
func (m *MockDB) Initialize(ctx context.Context) error {
	return nil
}

// LoadAccounts returns a copy of the stored account collection
func (m *MockDB) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneAccounts(m.accounts), nil
}

// SaveAccounts replaces the stored account collection with a copy of the input
func (m *MockDB) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts = cloneAccounts(accounts)
	return nil
}

// Close does nothing for mock DB
func (m *MockDB) Close() error {
	return nil
}

// cloneAccounts deep-copies accounts so callers never share profile slices
// with the store
func cloneAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, len(accounts))
	for i, acc := range accounts {
		out[i] = acc
		out[i].Profiles = make([]models.Profile, len(acc.Profiles))
		copy(out[i].Profiles, acc.Profiles)
	}
	return out
}
