package main

import (
	"context"
	"fmt"
	"os"

	"food-admin/internal/config"

	"github.com/jackc/pgx/v5"
)

// Connects with the same settings as the API server and prints the database
// name and the applied schema migrations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	var version int64
	var dirty bool
	err = conn.QueryRow(ctx, "SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty)
	if err != nil {
		fmt.Println("\nNo schema version recorded yet; start the API once to create the schema.")
		return
	}

	fmt.Printf("Schema version: %d", version)
	if dirty {
		fmt.Print(" (dirty: the last migration failed and needs a manual fix)")
	}
	fmt.Println()
}
