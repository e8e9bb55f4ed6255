package ch

import (
	"context"
	"crypto/tls"
	"fmt"

	"strive/internal/models"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type ClickHouseDB struct {
	conn clickhouse.Conn
}

// NewClickHouseDB creates a new ClickHouse database connection
func NewClickHouseDB(host string, port int, database, user, password string, useTLS bool) (*ClickHouseDB, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	options := &clickhouse.Options{
		Addr:     []string{addr},
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: database,
			Username: user,
			Password: password,
		},
	}

	if useTLS {
		options.TLS = &tls.Config{
			InsecureSkipVerify: false,
		}
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	// Test the connection
	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &ClickHouseDB{conn: conn}, nil
}

// Initialize is a no-op - tables are managed via migrations
func (db *ClickHouseDB) Initialize(ctx context.Context) error {
	// Tables are managed via migrations (see migrations/ directory)
	// This method is kept for interface compatibility
	return nil
}

// LoadAccounts returns all stored accounts with their profiles, in the order
// they were saved
func (db *ClickHouseDB) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := db.conn.Query(ctx, `SELECT id, email, password, name FROM accounts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	index := make(map[string]int)
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.Email, &acc.Password, &acc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		index[acc.ID] = len(accounts)
		accounts = append(accounts, acc)
	}

	profileRows, err := db.conn.Query(ctx, `SELECT id, account_id, name, avatar, photo FROM profiles ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	defer profileRows.Close()

	for profileRows.Next() {
		var p models.Profile
		if err := profileRows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Avatar, &p.Photo); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		i, ok := index[p.AccountID]
		if !ok {
			// Orphaned profile row, skip it
			continue
		}
		accounts[i].Profiles = append(accounts[i].Profiles, p)
	}

	return accounts, nil
}

// SaveAccounts replaces the stored account collection
func (db *ClickHouseDB) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	if err := db.conn.Exec(ctx, `TRUNCATE TABLE accounts`); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}
	if err := db.conn.Exec(ctx, `TRUNCATE TABLE profiles`); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}

	accountBatch, err := db.conn.PrepareBatch(ctx, `INSERT INTO accounts (seq, id, email, password, name)`)
	if err != nil {
		return fmt.Errorf("failed to prepare account batch: %w", err)
	}
	profileBatch, err := db.conn.PrepareBatch(ctx, `INSERT INTO profiles (seq, id, account_id, name, avatar, photo)`)
	if err != nil {
		return fmt.Errorf("failed to prepare profile batch: %w", err)
	}

	var profileSeq uint64
	for i, acc := range accounts {
		if err := accountBatch.Append(uint64(i), acc.ID, acc.Email, acc.Password, acc.Name); err != nil {
			return fmt.Errorf("failed to append account: %w", err)
		}
		for _, p := range acc.Profiles {
			if err := profileBatch.Append(profileSeq, p.ID, p.AccountID, p.Name, p.Avatar, p.Photo); err != nil {
				return fmt.Errorf("failed to append profile: %w", err)
			}
			profileSeq++
		}
	}

	if err := accountBatch.Send(); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	if err := profileBatch.Send(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *ClickHouseDB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
