package service

import (
	"context"
	"time"

	"food-admin/internal/model"

	"github.com/google/uuid"
)

// UserService defines operations for user management.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, req *model.UserRequest) (*model.User, error)

	// Update applies patch to the user. Returns model.ErrUserNotFound for an unknown id.
	Update(ctx context.Context, id uuid.UUID, patch *model.UserPatch) (*model.User, error)

	// Delete removes the user if present; a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService defines operations for category management.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, patch *model.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products with their category expanded.
	List(ctx context.Context) ([]model.ProductView, error)
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch *model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder prices and persists a new order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves every order with its user and products expanded.
	List(ctx context.Context) ([]model.OrderView, error)
}

// DashboardService computes the dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
}

// timestamp returns the current UTC time at the microsecond precision the
// store keeps, so a created record reads back with the timestamps it was returned with.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
