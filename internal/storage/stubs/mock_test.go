package stubs

import (
	"context"
	"testing"

	"strive/internal/models"
)

func TestMockDB_LoadEmpty(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	if err := db.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}

	accounts, err := db.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Expected empty store, got %d accounts", len(accounts))
	}
}

func TestMockDB_SaveLoadRoundTrip(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	in := []models.Account{
		{
			ID:       "acc-1",
			Email:    "a@b.com",
			Password: "secret1",
			Name:     "Ann",
			Profiles: []models.Profile{
				{ID: "p-1", Name: "Ann Profile", Avatar: "A", AccountID: "acc-1"},
			},
		},
		{
			ID:       "acc-2",
			Email:    "b@c.com",
			Password: "secret2",
			Name:     "Bob",
			Profiles: []models.Profile{},
		},
	}

	if err := db.SaveAccounts(ctx, in); err != nil {
		t.Fatalf("SaveAccounts failed: %v", err)
	}

	out, err := db.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 accounts, got %d", len(out))
	}
	// Order is preserved
	if out[0].ID != "acc-1" || out[1].ID != "acc-2" {
		t.Errorf("Expected saved order, got %q, %q", out[0].ID, out[1].ID)
	}
	if len(out[0].Profiles) != 1 || out[0].Profiles[0].Name != "Ann Profile" {
		t.Error("Expected profile to survive the round trip")
	}
}

func TestMockDB_SaveCopiesInput(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	in := []models.Account{
		{ID: "acc-1", Email: "a@b.com", Profiles: []models.Profile{{ID: "p-1", Name: "First"}}},
	}
	if err := db.SaveAccounts(ctx, in); err != nil {
		t.Fatalf("SaveAccounts failed: %v", err)
	}

	// Mutating the caller's slice after saving must not affect the store
	in[0].Profiles[0].Name = "Changed"

	out, err := db.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if out[0].Profiles[0].Name != "First" {
		t.Errorf("Expected stored profile name 'First', got %q", out[0].Profiles[0].Name)
	}

	// Mutating a loaded copy must not affect the store either
	out[0].Profiles[0].Name = "Changed again"
	reloaded, err := db.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if reloaded[0].Profiles[0].Name != "First" {
		t.Errorf("Expected stored profile name 'First', got %q", reloaded[0].Profiles[0].Name)
	}
}

func TestMockDB_SaveReplacesCollection(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	if err := db.SaveAccounts(ctx, []models.Account{{ID: "acc-1"}, {ID: "acc-2"}}); err != nil {
		t.Fatalf("SaveAccounts failed: %v", err)
	}
	if err := db.SaveAccounts(ctx, []models.Account{{ID: "acc-3"}}); err != nil {
		t.Fatalf("SaveAccounts failed: %v", err)
	}

	out, err := db.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "acc-3" {
		t.Errorf("Expected save to replace the collection, got %v", out)
	}
}
