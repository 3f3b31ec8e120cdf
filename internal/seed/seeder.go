package seed

import (
	"context"
	"fmt"
	"time"

	"food-admin/internal/model"
	"food-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TxBeginner starts transactions; *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Result counts the records a Seed call inserted.
type Result struct {
	Categories int
	Products   int
	Users      int
}

// Seeder writes a Dataset through the repositories in a single transaction.
type Seeder struct {
	db     TxBeginner
	logger zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(db TxBeginner, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed inserts categories first, then products with their category name
// resolved to an id, then users. Nothing is written if any record fails.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) (*Result, error) {
	result := &Result{}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		categoryRepo := repository.NewCategoryRepository(tx, s.logger)
		productRepo := repository.NewProductRepository(tx, s.logger)
		userRepo := repository.NewUserRepository(tx, s.logger)

		existing, err := categoryRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		byName := make(map[string]uuid.UUID, len(existing)+len(ds.Categories))
		for _, c := range existing {
			if _, ok := byName[c.Name]; !ok {
				byName[c.Name] = c.ID
			}
		}

		now := time.Now().UTC().Truncate(time.Microsecond)

		for _, rec := range ds.Categories {
			category := &model.Category{
				ID:          uuid.New(),
				Name:        rec.Name,
				Description: rec.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return fmt.Errorf("failed to create category %q: %w", rec.Name, err)
			}
			byName[rec.Name] = category.ID
			result.Categories++
		}

		for _, rec := range ds.Products {
			categoryID, ok := byName[rec.Category]
			if !ok {
				return fmt.Errorf("product %q: %w %q", rec.Name, ErrUnknownCategory, rec.Category)
			}
			status := rec.Status
			if status == "" {
				status = model.ProductStatusActive
			}
			product := &model.Product{
				ID:         uuid.New(),
				Name:       rec.Name,
				CategoryID: categoryID,
				Price:      rec.Price,
				Status:     status,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return fmt.Errorf("failed to create product %q: %w", rec.Name, err)
			}
			result.Products++
		}

		for _, rec := range ds.Users {
			user := &model.User{
				ID:        uuid.New(),
				Name:      rec.Name,
				Email:     rec.Email,
				Mobile:    rec.Mobile,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return fmt.Errorf("failed to create user %q: %w", rec.Email, err)
			}
			result.Users++
		}

		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("seeding failed, transaction rolled back")
		return nil, err
	}

	s.logger.Info().
		Int("categories", result.Categories).
		Int("products", result.Products).
		Int("users", result.Users).
		Msg("seed data written")

	return result, nil
}
