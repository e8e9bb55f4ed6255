// Command migrate applies the ClickHouse schema for the account store.
//
// Usage: migrate [up|down|status|version|create <name>]
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "./migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(command, os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(command string, args []string) error {
	db, err := sql.Open("clickhouse", dsnFromEnv())
	if err != nil {
		return fmt.Errorf("failed to open ClickHouse connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ClickHouse is not reachable: %w", err)
	}

	if err := goose.SetDialect("clickhouse"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			return err
		}
		log.Println("Account store schema is up to date")
		return nil
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			return err
		}
		log.Println("Rolled back one migration")
		return nil
	case "status":
		return goose.Status(db, migrationsDir)
	case "version":
		version, err := goose.GetDBVersion(db)
		if err != nil {
			return err
		}
		log.Printf("Schema version: %d", version)
		return nil
	case "create":
		if len(args) < 1 {
			return fmt.Errorf("usage: migrate create <name>")
		}
		return goose.Create(db, migrationsDir, args[0], "sql")
	default:
		return fmt.Errorf("unknown command %q (up, down, status, version, create)", command)
	}
}

// dsnFromEnv builds the ClickHouse DSN from the same CLICKHOUSE_* variables
// the app reads
func dsnFromEnv() string {
	dsn := fmt.Sprintf("clickhouse://%s:%s@%s:%s/%s?dial_timeout=10s&max_execution_time=60",
		envOr("CLICKHOUSE_USER", "default"),
		os.Getenv("CLICKHOUSE_PASSWORD"),
		envOr("CLICKHOUSE_HOST", "localhost"),
		envOr("CLICKHOUSE_PORT", "9000"),
		envOr("CLICKHOUSE_DATABASE", "default"),
	)
	if os.Getenv("CLICKHOUSE_USE_TLS") == "true" {
		dsn += "&secure=true"
	}
	return dsn
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
