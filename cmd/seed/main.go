package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"food-admin/internal/config"
	"food-admin/internal/database"
	"food-admin/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "data/seed/catalogue.ndjson.gz", "seed file path (relative to SEED_S3_PREFIX when S3 is enabled)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, database.Migrations(), logger); err != nil {
		return fmt.Errorf("failed to apply schema migrations: %w", err)
	}

	// S3 first when configured, local file system otherwise or on failure
	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader
	if cfg.Seed.S3Enabled {
		s3Loader, err = seed.NewS3Loader(ctx, cfg.Seed.Bucket, cfg.Seed.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	} else {
		logger.Info().Msg("using local file system for seed files (S3 disabled)")
	}
	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.Prefix, cfg.Seed.S3Enabled, logger)

	ds, err := loader.Load(ctx, *file)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	result, err := seed.NewSeeder(pool, logger).Seed(ctx, ds)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Printf("Seeded %d categories, %d products and %d users\n",
		result.Categories, result.Products, result.Users)
	return nil
}
