package service

import (
	"context"
	"fmt"

	"food-admin/internal/model"
	"food-admin/internal/projection"
	"food-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products with their category expanded.
func (s *productService) List(ctx context.Context) ([]model.ProductView, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	categories, err := s.categoryRepo.GetByIDs(ctx, projection.ProductReferences(products))
	if err != nil {
		return nil, fmt.Errorf("failed to get product categories: %w", err)
	}

	s.logger.Debug().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Msg("retrieved products")

	return projection.Products(products, projection.CategoriesByID(categories)), nil
}

// Create stores a new product. The category reference is not checked.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product request")
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.ProductStatusActive
	}

	now := timestamp()
	product := &model.Product{
		ID:         uuid.New(),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      *req.Price,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID.String()).Msg("product created")

	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, patch *model.ProductPatch) (*model.Product, error) {
	if err := validateStruct(patch); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id.String()).Msg("invalid product patch")
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	patch.Apply(product)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
