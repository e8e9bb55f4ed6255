package storage

import (
	"context"

	"strive/internal/models"
)

// Storage defines the interface for account persistence.
//
// The controller loads the full account collection once at startup and
// writes the full collection back after every mutation, in mutation order.
type Storage interface {
	// LoadAccounts returns all stored accounts with their profiles
	LoadAccounts(ctx context.Context) ([]models.Account, error)

	// SaveAccounts replaces the stored account collection
	SaveAccounts(ctx context.Context, accounts []models.Account) error

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}
