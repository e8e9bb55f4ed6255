package ch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clickhouseTC "github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"strive/internal/models"
)

// runMigrations manually creates the account tables
func runMigrations(ctx context.Context, db *ClickHouseDB) error {
	// Drop existing tables
	_ = db.conn.Exec(ctx, "DROP TABLE IF EXISTS profiles")
	_ = db.conn.Exec(ctx, "DROP TABLE IF EXISTS accounts")

	// Create accounts table
	err := db.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			seq UInt64,
			id String,
			email String,
			password String,
			name String
		) ENGINE = MergeTree()
		ORDER BY seq
	`)
	if err != nil {
		return err
	}

	// Create profiles table
	err = db.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			seq UInt64,
			id String,
			account_id String,
			name String,
			avatar String,
			photo String
		) ENGINE = MergeTree()
		ORDER BY seq
	`)
	return err
}

// setupTestDB creates a test ClickHouse instance using testcontainers
func setupTestDB(t *testing.T) (*ClickHouseDB, func()) {
	ctx := context.Background()

	// Start ClickHouse container
	clickhouseContainer, err := clickhouseTC.Run(ctx,
		"clickhouse/clickhouse-server:24.3.3.102-alpine",
		clickhouseTC.WithUsername("default"),
		clickhouseTC.WithPassword(""),
		clickhouseTC.WithDatabase("default"),
	)
	require.NoError(t, err, "Failed to start ClickHouse container")

	// Get connection details
	host, err := clickhouseContainer.Host(ctx)
	require.NoError(t, err)

	port, err := clickhouseContainer.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	// Create database connection
	db, err := NewClickHouseDB(host, port.Int(), "default", "default", "", false)
	require.NoError(t, err, "Failed to connect to ClickHouse")

	// Run migrations manually (goose doesn't work well with ClickHouse)
	err = runMigrations(ctx, db)
	require.NoError(t, err, "Failed to run migrations")

	// Cleanup function
	cleanup := func() {
		db.Close()
		clickhouseContainer.Terminate(ctx)
	}

	return db, cleanup
}

func testAccounts() []models.Account {
	return []models.Account{
		{
			ID:       "acc-1",
			Email:    "ann@school.nl",
			Password: "secret1",
			Name:     "Ann",
			Profiles: []models.Profile{
				{ID: "p-1", Name: "Ann Profile", Avatar: "A", AccountID: "acc-1", Photo: ""},
				{ID: "p-2", Name: "Tweede", Avatar: "T", AccountID: "acc-1", Photo: "file://avatar.png"},
			},
		},
		{
			ID:       "acc-2",
			Email:    "bob@school.nl",
			Password: "secret2",
			Name:     "Bob",
		},
	}
}

// TestClickHouseDB_SaveLoadRoundTrip tests that the account collection
// survives a save/load cycle with order and profiles intact
func TestClickHouseDB_SaveLoadRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Initially should be empty
	accounts, err := db.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// Save and reload
	require.NoError(t, db.SaveAccounts(ctx, testAccounts()))

	loaded, err := db.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "acc-1", loaded[0].ID)
	assert.Equal(t, "ann@school.nl", loaded[0].Email)
	assert.Equal(t, "secret1", loaded[0].Password)
	assert.Equal(t, "Ann", loaded[0].Name)
	require.Len(t, loaded[0].Profiles, 2)
	assert.Equal(t, "Ann Profile", loaded[0].Profiles[0].Name)
	assert.Equal(t, "A", loaded[0].Profiles[0].Avatar)
	assert.Equal(t, "acc-1", loaded[0].Profiles[0].AccountID)
	assert.Equal(t, "file://avatar.png", loaded[0].Profiles[1].Photo)

	assert.Equal(t, "acc-2", loaded[1].ID)
	assert.Empty(t, loaded[1].Profiles)
}

// TestClickHouseDB_SaveReplacesCollection tests that each save replaces the
// previously stored collection
func TestClickHouseDB_SaveReplacesCollection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, db.SaveAccounts(ctx, testAccounts()))

	// Save a smaller collection with a profile removed
	updated := testAccounts()[:1]
	updated[0].Profiles = updated[0].Profiles[:1]
	require.NoError(t, db.SaveAccounts(ctx, updated))

	loaded, err := db.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "acc-1", loaded[0].ID)
	require.Len(t, loaded[0].Profiles, 1)
	assert.Equal(t, "Ann Profile", loaded[0].Profiles[0].Name)
}

// TestClickHouseDB_SaveEmpty tests that saving an empty collection clears
// the store
func TestClickHouseDB_SaveEmpty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, db.SaveAccounts(ctx, testAccounts()))
	require.NoError(t, db.SaveAccounts(ctx, nil))

	loaded, err := db.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
