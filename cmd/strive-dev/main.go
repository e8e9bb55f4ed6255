// Command strive-dev runs the bot against a throwaway ClickHouse instance in
// a local container, so a full stack can be exercised without a deployed
// database. TELEGRAM_BOT_TOKEN and ALLOWED_USER_IDS must still be provided.
package main

import (
	"context"
	"log"
	"os"

	"github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"strive/internal/app"
)

const devPassword = "devpassword"

func main() {
	ctx := context.Background()

	container, err := startClickHouse(ctx)
	if err != nil {
		log.Fatalf("Could not start ClickHouse container: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("Could not terminate ClickHouse container: %v", err)
		}
	}()

	if err := pointAppAtContainer(ctx, container); err != nil {
		log.Fatalf("Could not resolve container address: %v", err)
	}

	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" {
		log.Println("TELEGRAM_BOT_TOKEN is not set; the bot will fail to start")
	}
	if os.Getenv("ALLOWED_USER_IDS") == "" {
		log.Println("ALLOWED_USER_IDS is not set; every update will be rejected")
	}

	application, err := app.New()
	if err != nil {
		log.Fatalf("Could not create the application: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func startClickHouse(ctx context.Context) (*clickhouse.ClickHouseContainer, error) {
	log.Println("Starting ClickHouse container")
	return clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:latest",
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(devPassword),
		clickhouse.WithDatabase("default"),
	)
}

// pointAppAtContainer overrides the CLICKHOUSE_* environment so app.New
// connects to the container instead of a configured instance
func pointAppAtContainer(ctx context.Context, container *clickhouse.ClickHouseContainer) error {
	host, err := container.Host(ctx)
	if err != nil {
		return err
	}
	port, err := container.MappedPort(ctx, "9000/tcp")
	if err != nil {
		return err
	}
	log.Printf("ClickHouse listening at %s:%s", host, port.Port())

	os.Setenv("CLICKHOUSE_HOST", host)
	os.Setenv("CLICKHOUSE_PORT", port.Port())
	os.Setenv("CLICKHOUSE_DATABASE", "default")
	os.Setenv("CLICKHOUSE_USER", "default")
	os.Setenv("CLICKHOUSE_PASSWORD", devPassword)
	os.Setenv("CLICKHOUSE_USE_TLS", "false")
	os.Setenv("USE_MOCK_DB", "false")
	os.Setenv("WEBHOOK_MODE", "false")
	if os.Getenv("PORT") == "" {
		os.Setenv("PORT", "8080")
	}
	return nil
}
