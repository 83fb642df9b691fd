package main

import (
	"context"
	"flag"
	"log"

	"github.com/pricestream/price-history/pkg/config"
	"github.com/pricestream/price-history/pkg/migration"
	"github.com/pricestream/price-history/pkg/postgresql"
)

func main() {
	var (
		direction = flag.String("direction", "up", "migration direction: up or down")
		steps     = flag.Int("steps", 0, "number of migrations to apply (0 = all pending)")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer client.Close()

	runner := migration.NewRunner(ctx, client, migration.Config{
		MigrationDir: cfg.App.MigrationDir,
	})

	if err := runner.EnsureMigrationTable(); err != nil {
		log.Fatalf("Failed to ensure migration table: %v", err)
	}

	switch *direction {
	case "up":
		err = runner.MigrateUp(*steps)
	case "down":
		err = runner.MigrateDown(*steps)
	default:
		log.Fatalf("Unknown migration direction: %s", *direction)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}
