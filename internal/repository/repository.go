package repository

import (
	"context"

	"food-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// List retrieves every user in creation order.
	List(ctx context.Context) ([]model.User, error)

	// Create inserts a new user. ID and timestamps must already be set.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a single user. Returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByIDs retrieves the users that still exist among ids.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)

	// Update persists the mutable fields of user and refreshes its UpdatedAt.
	// Returns model.ErrUserNotFound when no row matches.
	Update(ctx context.Context, user *model.User) error

	// Delete removes a user. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Category, error)

	// Update returns model.ErrCategoryNotFound when no row matches.
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves the products that still exist among ids.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Update returns model.ErrProductNotFound when no row matches.
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
// Orders are append-only: there is no update or delete.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order row within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the line items of an order within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// List retrieves every order with its items in their submitted order.
	List(ctx context.Context) ([]model.Order, error)

	// Count returns the number of orders.
	Count(ctx context.Context) (int64, error)

	// TotalRevenue sums totalAmount over all orders; zero when there are none.
	TotalRevenue(ctx context.Context) (float64, error)
}
