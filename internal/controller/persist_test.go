package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"strive/internal/models"
)

// failingStore loads fine but rejects every save
type failingStore struct{}

func (failingStore) LoadAccounts(ctx context.Context) ([]models.Account, error) { return nil, nil }
func (failingStore) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	return errors.New("disk on fire")
}
func (failingStore) Initialize(ctx context.Context) error { return nil }
func (failingStore) Close() error                         { return nil }

func TestController_SaveFailureDoesNotFailCommand(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, failingStore{}, Seed{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}

	// The persistence write fails, the command still succeeds
	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Expected signup to succeed despite save failure, got %v", err)
	}
	if c.AccountCount() != 1 {
		t.Errorf("Expected 1 account in the session, got %d", c.AccountCount())
	}
	if c.State() != models.StateCreateProfile {
		t.Errorf("Expected state %q, got %q", models.StateCreateProfile, c.State())
	}

	if _, err := c.CreateProfile(ctx, "Ann Profile", ""); err != nil {
		t.Fatalf("Expected profile creation to succeed despite save failure, got %v", err)
	}
}
